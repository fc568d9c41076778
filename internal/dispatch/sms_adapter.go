package dispatch

import (
	"context"
	"log/slog"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/service"

	"github.com/google/uuid"
)

// SMSAdapter hands short text renditions of alerts to the SMS gateway.
type SMSAdapter struct {
	baseAdapter
	sender service.SMSSender
}

// NewSMSAdapter creates an SMS channel adapter.
func NewSMSAdapter(sender service.SMSSender, timeout time.Duration, logger *slog.Logger) *SMSAdapter {
	return &SMSAdapter{
		baseAdapter: newBaseAdapter(entity.ChannelSMS, timeout, logger),
		sender:      sender,
	}
}

// Deliver implements ChannelAdapter.
func (a *SMSAdapter) Deliver(ctx context.Context, alert *entity.Alert, rcpt *entity.Recipient) entity.DeliveryResult {
	msg, err := a.prepare(alert, rcpt)

	return a.run(ctx, alert, false, err, func(ctx context.Context) (string, error) {
		id, err := a.sender.SendSMS(ctx, msg)
		if err != nil {
			return "", transportError(a.channel, err)
		}

		return id, nil
	})
}

// Preview implements ChannelAdapter.
func (a *SMSAdapter) Preview(ctx context.Context, alert *entity.Alert, rcpt *entity.Recipient) entity.DeliveryResult {
	_, err := a.prepare(alert, rcpt)

	return a.run(ctx, alert, true, err, nil)
}

func (a *SMSAdapter) prepare(alert *entity.Alert, rcpt *entity.Recipient) (*service.SMSMessage, error) {
	if rcpt == nil || rcpt.Phone == "" {
		return nil, errNoDestination
	}

	return &service.SMSMessage{
		RequestID: uuid.NewString(),
		AlertID:   alert.ID.String(),
		To:        rcpt.Phone,
		Body:      renderSMS(alert),
	}, nil
}
