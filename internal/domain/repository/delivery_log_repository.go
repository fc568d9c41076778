package repository

import (
	"context"
	"time"

	"pricealert/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryHistory is the read-only view of past deliveries used by the suppression policy.
type DeliveryHistory interface {
	// LastSuccessfulDelivery returns the latest successful delivery time for a user and product, or nil.
	LastSuccessfulDelivery(ctx context.Context, userID uuid.UUID, productID string) (*time.Time, error)

	// CountAlertPassesSince counts orchestration passes of an alert with at least one successful channel since the given time.
	CountAlertPassesSince(ctx context.Context, alertID uuid.UUID, since time.Time) (int, error)

	// CountUserPassesSince counts successful orchestration passes across all of a user's alerts since the given time.
	CountUserPassesSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

// DeliveryLogRepository stores the bounded per-alert delivery history.
type DeliveryLogRepository interface {
	DeliveryHistory

	// AppendLogs persists delivery log entries in a batch.
	AppendLogs(ctx context.Context, logs []*entity.DeliveryLog) error

	// FindLogsByAlert returns the most recent log entries of an alert, newest first.
	FindLogsByAlert(ctx context.Context, alertID uuid.UUID, limit int) ([]*entity.DeliveryLog, error)
}
