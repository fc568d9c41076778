// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertType is the product condition an alert watches for. It is fixed at creation.
type AlertType string

const (
	AlertTypePriceDrop      AlertType = "price_drop"
	AlertTypeHistoricalLow  AlertType = "historical_low"
	AlertTypeStockAvailable AlertType = "stock_available"
	AlertTypeBackInStock    AlertType = "back_in_stock"
	AlertTypePriceTarget    AlertType = "price_target"
)

// AlertTypes lists every supported alert type.
var AlertTypes = []AlertType{
	AlertTypePriceDrop,
	AlertTypeHistoricalLow,
	AlertTypeStockAvailable,
	AlertTypeBackInStock,
	AlertTypePriceTarget,
}

// IsValid reports whether t is a known alert type.
func (t AlertType) IsValid() bool {
	return slices.Contains(AlertTypes, t)
}

// Priority affects expiration and SMS rendering, never delivery order.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}

	return false
}

// DefaultLifetime is how long an alert of this priority stays active when no expiration is given.
func (p Priority) DefaultLifetime() time.Duration {
	const day = 24 * time.Hour

	switch p {
	case PriorityUrgent:
		return 3 * day
	case PriorityHigh:
		return 7 * day
	case PriorityLow:
		return 30 * day
	default:
		return 14 * day
	}
}

// AlertStatus is the lifecycle state of an alert.
type AlertStatus string

const (
	AlertStatusPending   AlertStatus = "pending"
	AlertStatusSent      AlertStatus = "sent"
	AlertStatusFailed    AlertStatus = "failed"
	AlertStatusCancelled AlertStatus = "cancelled"
)

// DefaultMaxDeliveryAttempts is used when an alert is created without an explicit budget.
const DefaultMaxDeliveryAttempts = 3

// QuietHours is a same-timezone-as-server window in HH:MM form. End may be earlier than
// Start, in which case the window wraps past midnight.
type QuietHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AlertSchedule controls when an alert may fire.
type AlertSchedule struct {
	Active          bool        `json:"active"`
	QuietHours      *QuietHours `json:"quiet_hours,omitempty"`
	MaxAlertsPerDay int         `json:"max_alerts_per_day"`
	CooldownMinutes int         `json:"cooldown_minutes"`
}

// AlertConditions is the business predicate evaluated by the trigger source. The engine
// stores it but never evaluates it.
type AlertConditions struct {
	TargetPrice    *decimal.Decimal `json:"target_price,omitempty"`
	PercentageDrop *float64         `json:"percentage_drop,omitempty"`
	Platforms      []string         `json:"platforms,omitempty"`
	MinRating      *float64         `json:"min_rating,omitempty"`
	StockStatus    []string         `json:"stock_status,omitempty"`
}

// Alert is a user's standing request to be notified when a product meets a condition.
type Alert struct {
	ID                  uuid.UUID             `json:"id"`
	UserID              uuid.UUID             `json:"user_id"`
	ProductID           string                `json:"product_id"`
	Type                AlertType             `json:"type"`
	Priority            Priority              `json:"priority"`
	Status              AlertStatus           `json:"status"`
	Conditions          AlertConditions       `json:"conditions"`
	Schedule            AlertSchedule         `json:"schedule"`
	Channels            []NotificationChannel `json:"channels"`
	Title               string                `json:"title"`
	Message             string                `json:"message"`
	AlertData           map[string]any        `json:"alert_data,omitempty"`
	DeliveryAttempts    int                   `json:"delivery_attempts"`
	MaxDeliveryAttempts int                   `json:"max_delivery_attempts"`
	CreatedAt           time.Time             `json:"created_at"`
	ScheduledAt         time.Time             `json:"scheduled_at"`
	SentAt              *time.Time            `json:"sent_at,omitempty"`
	ExpiresAt           *time.Time            `json:"expires_at,omitempty"`
	UpdatedAt           time.Time             `json:"updated_at"`
	Version             int64                 `json:"version"`
}

// Clone returns a deep copy so concurrent channel dispatches never share mutable state.
func (a *Alert) Clone() *Alert {
	if a == nil {
		return nil
	}

	cloned := *a
	cloned.Channels = slices.Clone(a.Channels)
	cloned.Conditions.Platforms = slices.Clone(a.Conditions.Platforms)
	cloned.Conditions.StockStatus = slices.Clone(a.Conditions.StockStatus)
	if a.Schedule.QuietHours != nil {
		qh := *a.Schedule.QuietHours
		cloned.Schedule.QuietHours = &qh
	}
	if a.AlertData != nil {
		cloned.AlertData = make(map[string]any, len(a.AlertData))
		for k, v := range a.AlertData {
			cloned.AlertData[k] = v
		}
	}
	if a.SentAt != nil {
		sentAt := *a.SentAt
		cloned.SentAt = &sentAt
	}
	if a.ExpiresAt != nil {
		expiresAt := *a.ExpiresAt
		cloned.ExpiresAt = &expiresAt
	}

	return &cloned
}

// IsExpired reports whether the alert expired at or before now.
func (a *Alert) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && !now.Before(*a.ExpiresAt)
}

// HasAttemptsLeft reports whether another orchestration pass may run.
func (a *Alert) HasAttemptsLeft() bool {
	return a.DeliveryAttempts < a.MaxDeliveryAttempts
}

// IsDispatchable reports whether an orchestration pass may run on the alert.
func (a *Alert) IsDispatchable() bool {
	switch a.Status {
	case AlertStatusPending:
		return a.HasAttemptsLeft()
	case AlertStatusFailed:
		return a.HasAttemptsLeft()
	default:
		return false
	}
}

// CanTransition reports whether the state machine allows moving from the current status to next.
// Leaving pending or failed for anything but cancelled needs a remaining attempt; an exhausted
// failed alert is terminal.
func (a *Alert) CanTransition(next AlertStatus) bool {
	switch a.Status {
	case AlertStatusPending:
		switch next {
		case AlertStatusCancelled:
			return true
		case AlertStatusSent, AlertStatusFailed:
			return a.HasAttemptsLeft()
		}
	case AlertStatusFailed:
		switch next {
		case AlertStatusCancelled:
			return true
		case AlertStatusPending, AlertStatusSent, AlertStatusFailed:
			return a.HasAttemptsLeft()
		}
	}

	return false
}

// NormalizeChannels collapses duplicate channels while preserving request order.
func NormalizeChannels(channels []NotificationChannel) []NotificationChannel {
	out := make([]NotificationChannel, 0, len(channels))
	for _, ch := range channels {
		if !slices.Contains(out, ch) {
			out = append(out, ch)
		}
	}

	return out
}
