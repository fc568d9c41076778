package handler

import (
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/usecase"

	"github.com/google/uuid"
)

// QuietHoursRequest is an HH:MM window; end before start wraps past midnight.
type QuietHoursRequest struct {
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

// ScheduleRequest is the wire form of an alert schedule. Active defaults to true.
type ScheduleRequest struct {
	Active          *bool              `json:"active"`
	QuietHours      *QuietHoursRequest `json:"quiet_hours"`
	MaxAlertsPerDay int                `json:"max_alerts_per_day" validate:"gte=0"`
	CooldownMinutes int                `json:"cooldown_minutes" validate:"gte=0"`
}

func (r *ScheduleRequest) toEntity() *entity.AlertSchedule {
	if r == nil {
		return nil
	}

	schedule := &entity.AlertSchedule{
		Active:          r.Active == nil || *r.Active,
		MaxAlertsPerDay: r.MaxAlertsPerDay,
		CooldownMinutes: r.CooldownMinutes,
	}
	if r.QuietHours != nil {
		schedule.QuietHours = &entity.QuietHours{Start: r.QuietHours.Start, End: r.QuietHours.End}
	}

	return schedule
}

// CreateAlertRequest represents the request body for creating an alert
type CreateAlertRequest struct {
	ProductID           string                 `json:"product_id" validate:"required,max=128"`
	Type                string                 `json:"type" validate:"required,oneof=price_drop historical_low stock_available back_in_stock price_target"`
	Priority            string                 `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Conditions          entity.AlertConditions `json:"conditions"`
	Schedule            *ScheduleRequest       `json:"schedule"`
	Channels            []string               `json:"channels" validate:"required,min=1,dive,channel"`
	Title               string                 `json:"title" validate:"required,max=200"`
	Message             string                 `json:"message" validate:"max=2000"`
	AlertData           map[string]any         `json:"alert_data"`
	MaxDeliveryAttempts int                    `json:"max_delivery_attempts" validate:"omitempty,min=1,max=10"`
	ScheduledAt         *time.Time             `json:"scheduled_at"`
	ExpiresAt           *time.Time             `json:"expires_at"`
}

func (r *CreateAlertRequest) toUsecase(userID uuid.UUID) *usecase.AlertCreationRequest {
	return &usecase.AlertCreationRequest{
		UserID:              userID,
		ProductID:           r.ProductID,
		Type:                entity.AlertType(r.Type),
		Priority:            entity.Priority(r.Priority),
		Conditions:          r.Conditions,
		Schedule:            r.Schedule.toEntity(),
		Channels:            toChannels(r.Channels),
		Title:               r.Title,
		Message:             r.Message,
		AlertData:           r.AlertData,
		MaxDeliveryAttempts: r.MaxDeliveryAttempts,
		ScheduledAt:         r.ScheduledAt,
		ExpiresAt:           r.ExpiresAt,
	}
}

// UpdateAlertRequest represents a partial update. Absent fields stay unchanged.
type UpdateAlertRequest struct {
	Title     *string          `json:"title" validate:"omitempty,max=200"`
	Message   *string          `json:"message" validate:"omitempty,max=2000"`
	Priority  *string          `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Channels  []string         `json:"channels" validate:"omitempty,min=1,dive,channel"`
	Schedule  *ScheduleRequest `json:"schedule"`
	ExpiresAt *time.Time       `json:"expires_at"`
	Status    *string          `json:"status" validate:"omitempty,oneof=pending"`
}

func (r *UpdateAlertRequest) toUsecase() *usecase.AlertPatch {
	patch := &usecase.AlertPatch{
		Title:     r.Title,
		Message:   r.Message,
		Schedule:  r.Schedule.toEntity(),
		ExpiresAt: r.ExpiresAt,
	}
	if r.Priority != nil {
		p := entity.Priority(*r.Priority)
		patch.Priority = &p
	}
	if r.Channels != nil {
		patch.Channels = toChannels(r.Channels)
	}
	if r.Status != nil {
		s := entity.AlertStatus(*r.Status)
		patch.Status = &s
	}

	return patch
}

// BatchProcessRequest triggers a pass over specific alerts.
type BatchProcessRequest struct {
	AlertIDs []uuid.UUID `json:"alert_ids" validate:"required,min=1,max=500"`
	DryRun   bool        `json:"dry_run"`
}

func toChannels(names []string) []entity.NotificationChannel {
	channels := make([]entity.NotificationChannel, len(names))
	for i, n := range names {
		channels[i] = entity.NotificationChannel(n)
	}

	return channels
}
