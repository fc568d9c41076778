package postgres

import (
	"context"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/repository"
	"pricealert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// preferencesRepository reads notification preferences written by the profile service.
type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository is the constructor for preferencesRepository.
func NewPreferencesRepository(db *gorm.DB) repository.PreferencesRepository {
	return &preferencesRepository{
		db: db,
	}
}

// FindPreferencesByUser returns the stored preferences of a user.
func (repo *preferencesRepository) FindPreferencesByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	var prefsM model.NotificationPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification preferences")
	}

	return toPreferencesDomain(&prefsM), nil
}

func toPreferencesDomain(data *model.NotificationPreferencesModel) *entity.NotificationPreferences {
	channels := make([]entity.NotificationChannel, 0, len(data.EnabledChannels))
	for _, ch := range data.EnabledChannels {
		channels = append(channels, entity.NotificationChannel(ch))
	}

	prefs := &entity.NotificationPreferences{
		UserID:                  data.UserID,
		EnabledChannels:         channels,
		MaxNotificationsPerDay:  data.MaxNotificationsPerDay,
		MaxNotificationsPerHour: data.MaxNotificationsPerHour,
	}
	if data.QuietHoursStart != nil && data.QuietHoursEnd != nil {
		prefs.QuietHours = &entity.QuietHours{Start: *data.QuietHoursStart, End: *data.QuietHoursEnd}
	}

	return prefs
}
