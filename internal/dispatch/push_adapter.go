package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/repository"
	"pricealert/internal/domain/service"
)

// PushAdapter sends alerts to every active device of the user through Firebase Cloud Messaging.
type PushAdapter struct {
	baseAdapter
	sender  service.PushSender
	devices repository.DeviceRepository
}

// NewPushAdapter creates a push channel adapter.
func NewPushAdapter(sender service.PushSender, devices repository.DeviceRepository, timeout time.Duration, logger *slog.Logger) *PushAdapter {
	return &PushAdapter{
		baseAdapter: newBaseAdapter(entity.ChannelPush, timeout, logger),
		sender:      sender,
		devices:     devices,
	}
}

// Deliver implements ChannelAdapter.
func (a *PushAdapter) Deliver(ctx context.Context, alert *entity.Alert, rcpt *entity.Recipient) entity.DeliveryResult {
	msg, err := a.prepare(alert, rcpt)

	return a.run(ctx, alert, false, err, func(ctx context.Context) (string, error) {
		return a.send(ctx, alert, msg)
	})
}

// Preview implements ChannelAdapter.
func (a *PushAdapter) Preview(ctx context.Context, alert *entity.Alert, rcpt *entity.Recipient) entity.DeliveryResult {
	_, err := a.prepare(alert, rcpt)

	return a.run(ctx, alert, true, err, nil)
}

func (a *PushAdapter) prepare(alert *entity.Alert, rcpt *entity.Recipient) (*service.PushMessage, error) {
	if rcpt == nil || len(rcpt.DeviceTokens) == 0 {
		return nil, errNoDestination
	}

	msg := renderPush(alert)
	tokens := rcpt.DeviceTokens
	// FCM multicast accepts at most 500 tokens per request
	if len(tokens) > maxPushTokens {
		tokens = tokens[:maxPushTokens]
	}
	msg.Tokens = append([]string(nil), tokens...)

	return msg, nil
}

func (a *PushAdapter) send(ctx context.Context, alert *entity.Alert, msg *service.PushMessage) (string, error) {
	resp, err := a.sender.SendMulticast(ctx, msg)
	if err != nil {
		return "", transportError(a.channel, err)
	}

	// Handle invalid tokens - deactivate devices
	if len(resp.InvalidTokens) > 0 {
		if err := a.devices.DeactivateTokens(ctx, resp.InvalidTokens); err != nil {
			a.logger.Warn("[Dispatch] Failed to deactivate invalid push tokens",
				slog.String("alert_id", alert.ID.String()),
				slog.Int("count", len(resp.InvalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	if resp.SuccessCount == 0 {
		failure := fmt.Errorf("no device accepted the notification (%d failed, %d invalid)",
			resp.FailureCount, len(resp.InvalidTokens))
		if resp.FailureCount > len(resp.InvalidTokens) {
			return "", &TransportError{Channel: a.channel, Err: failure}
		}

		return "", Permanent(failure)
	}

	if len(resp.MessageIDs) > 0 {
		return resp.MessageIDs[0], nil
	}

	return "", nil
}
