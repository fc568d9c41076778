// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"pricealert/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for alert persistence.
var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrAlertVersionConflict is returned when a save loses an optimistic version check.
	ErrAlertVersionConflict = errors.New("alert was modified concurrently")
)

// AlertRepository defines the interface for alert-related database operations.
type AlertRepository interface {
	// CreateAlert persists a new alert.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindAlertByID retrieves an alert by its unique ID.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// FindAlertsByUser retrieves a user's alerts, newest first.
	FindAlertsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Alert, error)

	// FindDueAlertIDs returns pending alerts and failed alerts with attempts left that have not expired at now.
	FindDueAlertIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)

	// SaveAlert writes the mutable fields of an alert if its stored version still equals alert.Version.
	// On success alert.Version is incremented.
	SaveAlert(ctx context.Context, alert *entity.Alert) error
}
