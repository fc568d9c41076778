package repository

import (
	"context"

	"pricealert/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateTokens marks devices holding any of the given FCM tokens as inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error
}
