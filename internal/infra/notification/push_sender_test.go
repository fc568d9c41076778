package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"pricealert/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticast struct {
	got  *messaging.MulticastMessage
	resp *messaging.BatchResponse
	err  error
}

func (f *fakeMulticast) SendEachForMulticast(_ context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = m

	return f.resp, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebasePushSender_SendMulticast(t *testing.T) {
	client := &fakeMulticast{resp: &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "projects/p/messages/1"},
			{Success: false, Error: errors.New("internal error")},
		},
	}}
	sender := newFirebasePushSender(client, discardLogger())

	resp, err := sender.SendMulticast(context.Background(), &service.PushMessage{
		Tokens:       []string{"a", "b"},
		Title:        "Price dropped",
		Body:         "Now 20% off",
		Data:         map[string]string{"alert_id": "1"},
		Category:     "PRICE_ALERT_PRICE_DROP",
		HighPriority: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.SuccessCount)
	assert.Equal(t, 1, resp.FailureCount)
	assert.Equal(t, []string{"projects/p/messages/1"}, resp.MessageIDs)
	assert.Empty(t, resp.InvalidTokens, "a generic failure is not an invalid token")

	require.NotNil(t, client.got)
	assert.Equal(t, "high", client.got.Android.Priority)
	assert.Equal(t, "10", client.got.APNS.Headers["apns-priority"])
	assert.Equal(t, "PRICE_ALERT_PRICE_DROP", client.got.APNS.Payload.Aps.Category)
	assert.Equal(t, "Price dropped", client.got.Notification.Title)
}

func TestFirebasePushSender_Limits(t *testing.T) {
	sender := newFirebasePushSender(&fakeMulticast{}, discardLogger())

	resp, err := sender.SendMulticast(context.Background(), &service.PushMessage{})
	require.NoError(t, err)
	assert.Zero(t, resp.SuccessCount)

	_, err = sender.SendMulticast(context.Background(), &service.PushMessage{Tokens: make([]string, maxMulticastTokens+1)})
	assert.ErrorIs(t, err, service.ErrRejected)
}

func TestFirebasePushSender_TransportError(t *testing.T) {
	sender := newFirebasePushSender(&fakeMulticast{err: errors.New("unavailable")}, discardLogger())

	_, err := sender.SendMulticast(context.Background(), &service.PushMessage{Tokens: []string{"a"}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrRejected)
}

func TestLogPushSender(t *testing.T) {
	sender := &logPushSender{logger: discardLogger()}

	resp, err := sender.SendMulticast(context.Background(), &service.PushMessage{Tokens: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.SuccessCount)
	assert.Len(t, resp.MessageIDs, 2)
}
