package usecase

import (
	"context"
	"time"

	"pricealert/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertCreationRequest carries everything needed to create an alert.
type AlertCreationRequest struct {
	UserID              uuid.UUID
	ProductID           string
	Type                entity.AlertType
	Priority            entity.Priority
	Conditions          entity.AlertConditions
	Schedule            *entity.AlertSchedule
	Channels            []entity.NotificationChannel
	Title               string
	Message             string
	AlertData           map[string]any
	MaxDeliveryAttempts int
	ScheduledAt         *time.Time
	ExpiresAt           *time.Time
}

// AlertPatch lists the fields a user may change on an existing alert. Nil means unchanged.
// Type and Conditions are fixed at creation.
type AlertPatch struct {
	Title     *string
	Message   *string
	Priority  *entity.Priority
	Channels  []entity.NotificationChannel
	Schedule  *entity.AlertSchedule
	ExpiresAt *time.Time
	// Status only accepts pending, which re-arms a failed alert with a fresh attempt budget.
	Status *entity.AlertStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p *AlertPatch) IsEmpty() bool {
	return p.Title == nil && p.Message == nil && p.Priority == nil && p.Channels == nil &&
		p.Schedule == nil && p.ExpiresAt == nil && p.Status == nil
}

// AlertUsecase defines the public alert operations.
type AlertUsecase interface {
	// CreateAlert validates and stores a new pending alert.
	CreateAlert(ctx context.Context, req *AlertCreationRequest) (*entity.Alert, error)

	// UpdateAlert applies a patch to an alert owned by userID.
	UpdateAlert(ctx context.Context, userID, alertID uuid.UUID, patch *AlertPatch) (*entity.Alert, error)

	// DeleteAlert cancels an alert. Alerts are never hard-deleted.
	DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error

	// GetAlert returns an alert owned by userID.
	GetAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error)

	// ListAlerts returns a page of the user's alerts, newest first.
	ListAlerts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Alert, error)

	// ProcessAlerts runs one pass over every due alert, or over the due alerts of owner when set.
	ProcessAlerts(ctx context.Context, owner *uuid.UUID, dryRun bool) ([]entity.DeliveryResult, error)

	// ProcessBatchAlerts runs one pass over the given alerts. Unknown or foreign ids are skipped.
	ProcessBatchAlerts(ctx context.Context, owner *uuid.UUID, alertIDs []uuid.UUID, dryRun bool) ([]entity.DeliveryResult, error)

	// GetAlertStatistics returns global statistics, or one user's when userID is set.
	GetAlertStatistics(ctx context.Context, userID *uuid.UUID) (*entity.AlertStatistics, error)

	// GetAlertDeliveryReport summarises the recorded delivery history of an alert.
	GetAlertDeliveryReport(ctx context.Context, userID, alertID uuid.UUID) (*entity.AlertDeliveryReport, error)
}
