package entity

import (
	"time"

	"github.com/google/uuid"
)

// Delivery error codes carried in DeliveryResult.Error.
const (
	DeliveryErrNoEnabledChannels = "no_enabled_channels"
	DeliveryErrNoDestination     = "no_destination"
	DeliveryErrTimeout           = "timeout"
	DeliveryErrCancelled         = "cancelled"
	DeliveryErrRepository        = "repository_error"
	DeliveryErrRetryExhausted    = "retry_exhausted"
	DeliveryErrNoAdapter         = "no_adapter"
)

// SuppressionReason explains why a pass was postponed. It is carried in DeliveryResult.Error.
type SuppressionReason string

const (
	SuppressScheduleInactive SuppressionReason = "schedule_inactive"
	SuppressNotDue           SuppressionReason = "not_due"
	SuppressQuietHours       SuppressionReason = "quiet_hours"
	SuppressCooldown         SuppressionReason = "cooldown"
	SuppressDailyCap         SuppressionReason = "daily_cap"
	SuppressHourlyCap        SuppressionReason = "hourly_cap"
)

// DeliveryMetadata carries measurements for a single channel attempt.
type DeliveryMetadata struct {
	DeliveryTimeMs int64 `json:"delivery_time_ms"`
	Attempts       int   `json:"attempts,omitempty"`
	DryRun         bool  `json:"dry_run,omitempty"`
}

// DeliveryResult is the outcome of one channel attempt for one alert.
//
// A postponed result is synthetic: it has no channel and means the pass was suppressed.
type DeliveryResult struct {
	AlertID     uuid.UUID           `json:"alert_id"`
	UserID      uuid.UUID           `json:"user_id"`
	AlertType   AlertType           `json:"alert_type"`
	Channel     NotificationChannel `json:"channel,omitempty"`
	Success     bool                `json:"success"`
	Postponed   bool                `json:"postponed,omitempty"`
	DeliveredAt *time.Time          `json:"delivered_at,omitempty"`
	RetryAfter  *time.Time          `json:"retry_after,omitempty"`
	Error       string              `json:"error,omitempty"`
	MessageID   string              `json:"message_id,omitempty"`
	Metadata    DeliveryMetadata    `json:"metadata"`

	// Retryable marks transient transport failures eligible for another attempt.
	Retryable bool `json:"-"`
}

// NewDeliveryResult starts a result for the given alert and channel.
func NewDeliveryResult(alert *Alert, channel NotificationChannel) DeliveryResult {
	return DeliveryResult{
		AlertID:   alert.ID,
		UserID:    alert.UserID,
		AlertType: alert.Type,
		Channel:   channel,
	}
}

// NewPostponedResult is the single result of a suppressed pass.
func NewPostponedResult(alert *Alert, reason SuppressionReason, retryAfter *time.Time) DeliveryResult {
	r := NewDeliveryResult(alert, "")
	r.Postponed = true
	r.Error = string(reason)
	r.RetryAfter = retryAfter

	return r
}

// DeliveryLog is a persisted per-channel record of a real orchestration pass.
type DeliveryLog struct {
	ID             uuid.UUID           `json:"id"`
	AlertID        uuid.UUID           `json:"alert_id"`
	UserID         uuid.UUID           `json:"user_id"`
	ProductID      string              `json:"product_id"`
	PassID         uuid.UUID           `json:"pass_id"`
	Channel        NotificationChannel `json:"channel"`
	Success        bool                `json:"success"`
	ErrorMessage   string              `json:"error_message,omitempty"`
	MessageID      string              `json:"message_id,omitempty"`
	DeliveryTimeMs int64               `json:"delivery_time_ms"`
	CreatedAt      time.Time           `json:"created_at"`
}
