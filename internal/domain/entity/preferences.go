package entity

import (
	"slices"

	"github.com/google/uuid"
)

// NotificationPreferences are a user's delivery settings. They are owned by the profile
// service and only read here.
type NotificationPreferences struct {
	UserID                  uuid.UUID             `json:"user_id"`
	EnabledChannels         []NotificationChannel `json:"enabled_channels"`
	QuietHours              *QuietHours           `json:"quiet_hours,omitempty"`
	MaxNotificationsPerDay  int                   `json:"max_notifications_per_day"`
	MaxNotificationsPerHour int                   `json:"max_notifications_per_hour"`
}

// DefaultPreferences enables every channel with no caps.
func DefaultPreferences(userID uuid.UUID) *NotificationPreferences {
	return &NotificationPreferences{
		UserID:          userID,
		EnabledChannels: slices.Clone(AllChannels),
	}
}

// EffectiveChannels returns requested ∩ enabled, in requested order.
func (p *NotificationPreferences) EffectiveChannels(requested []NotificationChannel) []NotificationChannel {
	out := make([]NotificationChannel, 0, len(requested))
	for _, ch := range NormalizeChannels(requested) {
		if slices.Contains(p.EnabledChannels, ch) {
			out = append(out, ch)
		}
	}

	return out
}

// Recipient holds the destinations a user can be reached at.
type Recipient struct {
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Locale       string    `json:"locale"`
	DeviceTokens []string  `json:"device_tokens"`
}
