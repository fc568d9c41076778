package model

import (
	"time"

	"pricealert/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertModel is the GORM-specific struct for the 'price_alerts' table.
// Conditions, schedule, channels and alert data are stored as JSONB documents.
type AlertModel struct {
	ID                  uuid.UUID              `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID              `gorm:"type:uuid;not null;index"`
	ProductID           string                 `gorm:"type:varchar(255);not null;index"`
	Type                string                 `gorm:"type:varchar(32);not null"`
	Priority            string                 `gorm:"type:varchar(16);not null"`
	Status              string                 `gorm:"type:varchar(16);not null;index:idx_price_alerts_due,priority:1"`
	Conditions          entity.AlertConditions `gorm:"type:jsonb;serializer:json;not null"`
	Schedule            entity.AlertSchedule   `gorm:"type:jsonb;serializer:json;not null"`
	Channels            []string               `gorm:"type:jsonb;serializer:json;not null"`
	Title               string                 `gorm:"type:text;not null"`
	Message             string                 `gorm:"type:text;not null"`
	AlertData           map[string]any         `gorm:"type:jsonb;serializer:json"`
	DeliveryAttempts    int                    `gorm:"not null;default:0"`
	MaxDeliveryAttempts int                    `gorm:"not null;default:3"`
	ScheduledAt         time.Time              `gorm:"not null;index:idx_price_alerts_due,priority:2"`
	SentAt              *time.Time
	ExpiresAt           *time.Time
	Version             int64 `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "price_alerts"
}

// DeliveryLogModel is the GORM-specific struct for the 'alert_delivery_logs' table.
// It records the outcome of one channel within one orchestration pass.
type DeliveryLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID        uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_logs_user_created,priority:1"`
	ProductID      string    `gorm:"type:varchar(255);not null"`
	PassID         uuid.UUID `gorm:"type:uuid;not null"`
	Channel        string    `gorm:"type:varchar(16);not null"`
	Success        bool      `gorm:"not null"`
	ErrorMessage   string    `gorm:"type:text"`
	MessageID      string    `gorm:"type:text"`
	DeliveryTimeMs int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"index:idx_delivery_logs_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "alert_delivery_logs"
}
