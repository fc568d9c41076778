package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChannelStatistics counts channel outcomes.
type ChannelStatistics struct {
	Sent   int64 `json:"sent"`
	Failed int64 `json:"failed"`
}

// AlertStatistics aggregates delivery outcomes. It is derived data owned by the engine.
type AlertStatistics struct {
	TotalDeliveries       int64                                     `json:"total_deliveries"`
	SuccessfulDeliveries  int64                                     `json:"successful_deliveries"`
	FailedDeliveries      int64                                     `json:"failed_deliveries"`
	SuppressedPasses      int64                                     `json:"suppressed_passes"`
	ByType                map[AlertType]int64                       `json:"by_type"`
	ByChannel             map[NotificationChannel]ChannelStatistics `json:"by_channel"`
	AverageDeliveryTimeMs float64                                   `json:"average_delivery_time_ms"`
	UpdatedAt             time.Time                                 `json:"updated_at"`
}

// ChannelReport summarises the recorded history of one channel for an alert.
type ChannelReport struct {
	Channel         NotificationChannel `json:"channel"`
	Attempts        int                 `json:"attempts"`
	Successes       int                 `json:"successes"`
	Failures        int                 `json:"failures"`
	LastError       string              `json:"last_error,omitempty"`
	LastDeliveredAt *time.Time          `json:"last_delivered_at,omitempty"`
}

// AlertDeliveryReport is the per-alert delivery summary exposed to the alert owner.
type AlertDeliveryReport struct {
	AlertID             uuid.UUID       `json:"alert_id"`
	Status              AlertStatus     `json:"status"`
	DeliveryAttempts    int             `json:"delivery_attempts"`
	MaxDeliveryAttempts int             `json:"max_delivery_attempts"`
	SentAt              *time.Time      `json:"sent_at,omitempty"`
	Channels            []ChannelReport `json:"channels"`
	Recent              []*DeliveryLog  `json:"recent"`
}
