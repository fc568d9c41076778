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

// recipientRepository resolves a user's contact details and active push tokens.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// FindRecipient loads the user's contact columns with active devices preloaded.
// An unknown or deleted user yields a recipient with no destinations, so only in-app delivery can succeed.
func (repo *recipientRepository) FindRecipient(ctx context.Context, userID uuid.UUID) (*entity.Recipient, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Devices", "is_active = ?", true).
		Where("id = ? AND deleted_at IS NULL", userID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Recipient{UserID: userID}, nil
		}

		return nil, errors.Wrap(err, "failed to find recipient")
	}

	tokens := make([]string, 0, len(userM.Devices))
	for _, device := range userM.Devices {
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}

	return &entity.Recipient{
		UserID:       userM.ID,
		Name:         userM.Name,
		Email:        userM.Email,
		Phone:        userM.Phone,
		Locale:       userM.Locale,
		DeviceTokens: tokens,
	}, nil
}
