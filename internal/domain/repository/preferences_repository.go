package repository

import (
	"context"
	"errors"

	"pricealert/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPreferencesNotFound is returned when a user never stored notification preferences.
var ErrPreferencesNotFound = errors.New("notification preferences not found")

// PreferencesRepository reads user notification preferences.
type PreferencesRepository interface {
	// FindPreferencesByUser returns the preferences of a user.
	FindPreferencesByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error)
}

// RecipientRepository resolves where a user can be reached.
type RecipientRepository interface {
	// FindRecipient returns the contact details and active device tokens of a user.
	FindRecipient(ctx context.Context, userID uuid.UUID) (*entity.Recipient, error)
}
