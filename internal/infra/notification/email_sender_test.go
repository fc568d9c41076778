package notification

import (
	"context"
	"errors"
	"testing"

	"pricealert/config"
	"pricealert/internal/domain/service"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostmark struct {
	sent postmark.Email
	resp postmark.EmailResponse
	err  error
}

func (f *fakePostmark) SendEmail(_ context.Context, email postmark.Email) (postmark.EmailResponse, error) {
	f.sent = email

	return f.resp, f.err
}

func TestPostmarkSender_SendEmail(t *testing.T) {
	api := &fakePostmark{resp: postmark.EmailResponse{MessageID: "pm-1"}}
	sender := newPostmarkSender(api, "alerts@example.com", "support@example.com")

	id, err := sender.SendEmail(context.Background(), &service.EmailMessage{
		To:       "shopper@example.com",
		Subject:  "[Price Alert] Price dropped",
		HTMLBody: "<p>hi</p>",
		TextBody: "hi",
		Tag:      "price_drop",
	})
	require.NoError(t, err)
	assert.Equal(t, "pm-1", id)
	assert.Equal(t, "alerts@example.com", api.sent.From)
	assert.Equal(t, "support@example.com", api.sent.ReplyTo)
	assert.Equal(t, "price_drop", api.sent.Tag)
	assert.Equal(t, "hi", api.sent.TextBody)
}

func TestPostmarkSender_Errors(t *testing.T) {
	tests := []struct {
		name         string
		resp         postmark.EmailResponse
		err          error
		wantRejected bool
	}{
		{name: "inactive recipient", resp: postmark.EmailResponse{ErrorCode: 406, Message: "inactive"}, wantRejected: true},
		{name: "invalid request", resp: postmark.EmailResponse{ErrorCode: 300, Message: "invalid"}, wantRejected: true},
		{name: "rate limited", resp: postmark.EmailResponse{ErrorCode: 429, Message: "slow down"}},
		{name: "network", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := newPostmarkSender(&fakePostmark{resp: tt.resp, err: tt.err}, "a@example.com", "")

			_, err := sender.SendEmail(context.Background(), &service.EmailMessage{To: "x@example.com"})
			require.Error(t, err)
			assert.Equal(t, tt.wantRejected, errors.Is(err, service.ErrRejected))
		})
	}
}

func TestNewEmailSender(t *testing.T) {
	cfg := &config.Config{}

	sender, err := NewEmailSender(EmailParams{Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &logEmailSender{}, sender)

	cfg.Email = &config.EmailConfig{Provider: "postmark"}
	_, err = NewEmailSender(EmailParams{Config: cfg, Logger: discardLogger()})
	assert.Error(t, err, "postmark without tokens must fail fast")

	cfg.Email = &config.EmailConfig{Provider: "postmark", ServerToken: "s", AccountToken: "a", SenderEmail: "alerts@example.com"}
	sender, err = NewEmailSender(EmailParams{Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &postmarkSender{}, sender)

	cfg.Email = &config.EmailConfig{Provider: "carrier-pigeon"}
	_, err = NewEmailSender(EmailParams{Config: cfg, Logger: discardLogger()})
	assert.Error(t, err)
}
