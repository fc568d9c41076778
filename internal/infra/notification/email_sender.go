package notification

import (
	"context"
	"fmt"
	"log/slog"

	"pricealert/config"
	"pricealert/internal/domain/constants"
	"pricealert/internal/domain/service"

	"github.com/google/uuid"
	"github.com/mrz1836/postmark"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Postmark API error codes that resending the same message cannot fix.
const (
	postmarkInvalidEmailRequest = 300
	postmarkInactiveRecipient   = 406
	postmarkInvalidJSON         = 402
	postmarkInvalidSender       = 400
)

// postmarkAPI is the part of *postmark.Client the sender uses.
type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

type postmarkSender struct {
	client       postmarkAPI
	senderEmail  string
	supportEmail string
}

// EmailParams holds dependencies for the email sender, injected by Fx
type EmailParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender builds the configured email provider.
func NewEmailSender(params EmailParams) (service.EmailSender, error) {
	cfg := params.Config.Email
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.EmailProviderLog {
		params.Logger.Info("Email provider not configured, using log sender")

		return &logEmailSender{logger: params.Logger}, nil
	}

	if cfg.Provider != constants.EmailProviderPostmark {
		return nil, errors.Errorf("unknown email provider: %s", cfg.Provider)
	}
	if cfg.ServerToken == "" || cfg.AccountToken == "" {
		return nil, errors.New("postmark server and account tokens are required")
	}
	if cfg.SenderEmail == "" {
		return nil, errors.New("sender email is required")
	}

	return newPostmarkSender(postmark.NewClient(cfg.ServerToken, cfg.AccountToken), cfg.SenderEmail, cfg.SupportEmail), nil
}

func newPostmarkSender(client postmarkAPI, sender, support string) *postmarkSender {
	return &postmarkSender{client: client, senderEmail: sender, supportEmail: support}
}

// SendEmail sends a transactional email and returns the Postmark message ID.
func (s *postmarkSender) SendEmail(ctx context.Context, msg *service.EmailMessage) (string, error) {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.senderEmail,
		ReplyTo:    s.supportEmail,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTMLBody,
		TextBody:   msg.TextBody,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return "", errors.Wrap(err, "postmark send")
	}

	if resp.ErrorCode > 0 {
		postmarkErr := fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
		if isPermanentPostmarkError(resp.ErrorCode) {
			return "", fmt.Errorf("%w: %w", service.ErrRejected, postmarkErr)
		}

		return "", postmarkErr
	}

	return resp.MessageID, nil
}

func isPermanentPostmarkError(code int64) bool {
	switch code {
	case postmarkInvalidEmailRequest, postmarkInactiveRecipient, postmarkInvalidJSON, postmarkInvalidSender:
		return true
	}

	return false
}

// logEmailSender writes emails to the log instead of sending them.
type logEmailSender struct {
	logger *slog.Logger
}

func (s *logEmailSender) SendEmail(ctx context.Context, msg *service.EmailMessage) (string, error) {
	id := "log-" + uuid.NewString()
	s.logger.InfoContext(ctx, "[LogEmail] Email",
		slog.String("message_id", id),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("tag", msg.Tag),
	)

	return id, nil
}
