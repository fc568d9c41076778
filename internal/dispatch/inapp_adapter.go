package dispatch

import (
	"context"
	"log/slog"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/service"
)

// InAppAdapter stores alerts in the user's in-app notification feed. It always has a destination.
type InAppAdapter struct {
	baseAdapter
	store service.InAppStore
}

// NewInAppAdapter creates an in-app channel adapter.
func NewInAppAdapter(store service.InAppStore, timeout time.Duration, logger *slog.Logger) *InAppAdapter {
	return &InAppAdapter{
		baseAdapter: newBaseAdapter(entity.ChannelInApp, timeout, logger),
		store:       store,
	}
}

// Deliver implements ChannelAdapter.
func (a *InAppAdapter) Deliver(ctx context.Context, alert *entity.Alert, _ *entity.Recipient) entity.DeliveryResult {
	n := a.render(alert)

	return a.run(ctx, alert, false, nil, func(ctx context.Context) (string, error) {
		id, err := a.store.Save(ctx, n)
		if err != nil {
			return "", transportError(a.channel, err)
		}

		return id, nil
	})
}

// Preview implements ChannelAdapter.
func (a *InAppAdapter) Preview(ctx context.Context, alert *entity.Alert, _ *entity.Recipient) entity.DeliveryResult {
	return a.run(ctx, alert, true, nil, nil)
}

func (a *InAppAdapter) render(alert *entity.Alert) *service.InAppNotification {
	data := make(map[string]any, len(alert.AlertData)+2)
	for k, v := range alert.AlertData {
		data[k] = v
	}
	data["product_id"] = alert.ProductID
	data["priority"] = string(alert.Priority)

	return &service.InAppNotification{
		UserID:  alert.UserID.String(),
		AlertID: alert.ID.String(),
		Type:    string(alert.Type),
		Title:   alert.Title,
		Message: alert.Message,
		Data:    data,
		Actions: actionsFor(alert.Type),
	}
}
