package dispatch

import (
	"context"
	"log/slog"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/service"
)

// EmailAdapter renders alerts as HTML email.
type EmailAdapter struct {
	baseAdapter
	sender service.EmailSender
}

// NewEmailAdapter creates an email channel adapter.
func NewEmailAdapter(sender service.EmailSender, timeout time.Duration, logger *slog.Logger) *EmailAdapter {
	return &EmailAdapter{
		baseAdapter: newBaseAdapter(entity.ChannelEmail, timeout, logger),
		sender:      sender,
	}
}

// Deliver implements ChannelAdapter.
func (a *EmailAdapter) Deliver(ctx context.Context, alert *entity.Alert, rcpt *entity.Recipient) entity.DeliveryResult {
	msg, err := a.prepare(alert, rcpt)

	return a.run(ctx, alert, false, err, func(ctx context.Context) (string, error) {
		id, err := a.sender.SendEmail(ctx, msg)
		if err != nil {
			return "", transportError(a.channel, err)
		}

		return id, nil
	})
}

// Preview implements ChannelAdapter.
func (a *EmailAdapter) Preview(ctx context.Context, alert *entity.Alert, rcpt *entity.Recipient) entity.DeliveryResult {
	_, err := a.prepare(alert, rcpt)

	return a.run(ctx, alert, true, err, nil)
}

func (a *EmailAdapter) prepare(alert *entity.Alert, rcpt *entity.Recipient) (*service.EmailMessage, error) {
	if rcpt == nil || rcpt.Email == "" {
		return nil, errNoDestination
	}

	msg, err := renderEmail(alert, rcpt)
	if err != nil {
		return nil, Permanent(err)
	}

	return msg, nil
}
