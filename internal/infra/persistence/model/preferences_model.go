package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferencesModel mirrors the 'notification_preferences' table owned by the profile service.
type NotificationPreferencesModel struct {
	UserID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	EnabledChannels         []string  `gorm:"type:jsonb;serializer:json;not null"`
	QuietHoursStart         *string   `gorm:"type:varchar(5)"`
	QuietHoursEnd           *string   `gorm:"type:varchar(5)"`
	MaxNotificationsPerDay  int       `gorm:"not null;default:0"`
	MaxNotificationsPerHour int       `gorm:"not null;default:0"`
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferencesModel) TableName() string {
	return "notification_preferences"
}
