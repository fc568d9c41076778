// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pricealert/internal/domain/entity"
	domainerrors "pricealert/internal/domain/errors"
	"pricealert/internal/domain/repository"
	"pricealert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertMutableColumns are the columns SaveAlert may change. Type and conditions are fixed at creation.
var alertMutableColumns = []string{
	"priority",
	"status",
	"schedule",
	"channels",
	"title",
	"message",
	"delivery_attempts",
	"max_delivery_attempts",
	"scheduled_at",
	"sent_at",
	"expires_at",
	"version",
	"updated_at",
}

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new alert.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("alert is missing required information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt
	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

// FindAlertByID retrieves an alert by its unique ID.
func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// FindAlertsByUser retrieves a page of a user's alerts, newest first.
func (repo *alertRepository) FindAlertsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by user")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// FindDueAlertIDs returns pending alerts and failed alerts with attempts left that have not expired, oldest schedule first.
func (repo *alertRepository) FindDueAlertIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	query := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("status IN ?", []string{string(entity.AlertStatusPending), string(entity.AlertStatusFailed)}).
		Where("delivery_attempts < max_delivery_attempts").
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("scheduled_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due alerts")
	}

	return ids, nil
}

// SaveAlert writes the mutable columns when the stored version still matches and bumps the version.
func (repo *alertRepository) SaveAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)
	alertM.Version = alert.Version + 1
	alertM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(alertM).
		Where("version = ?", alert.Version).
		Select(alertMutableColumns).
		Updates(alertM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save alert")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.AlertModel{}).Where("id = ?", alert.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check alert existence")
		}
		if count == 0 {
			return repository.ErrAlertNotFound
		}

		return repository.ErrAlertVersionConflict
	}

	alert.Version = alertM.Version
	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	channels := make([]entity.NotificationChannel, 0, len(data.Channels))
	for _, ch := range data.Channels {
		channels = append(channels, entity.NotificationChannel(ch))
	}

	return &entity.Alert{
		ID:                  data.ID,
		UserID:              data.UserID,
		ProductID:           data.ProductID,
		Type:                entity.AlertType(data.Type),
		Priority:            entity.Priority(data.Priority),
		Status:              entity.AlertStatus(data.Status),
		Conditions:          data.Conditions,
		Schedule:            data.Schedule,
		Channels:            channels,
		Title:               data.Title,
		Message:             data.Message,
		AlertData:           data.AlertData,
		DeliveryAttempts:    data.DeliveryAttempts,
		MaxDeliveryAttempts: data.MaxDeliveryAttempts,
		CreatedAt:           data.CreatedAt,
		ScheduledAt:         data.ScheduledAt,
		SentAt:              data.SentAt,
		ExpiresAt:           data.ExpiresAt,
		UpdatedAt:           data.UpdatedAt,
		Version:             data.Version,
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	channels := make([]string, 0, len(data.Channels))
	for _, ch := range data.Channels {
		channels = append(channels, string(ch))
	}

	return &model.AlertModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		ProductID:           data.ProductID,
		Type:                string(data.Type),
		Priority:            string(data.Priority),
		Status:              string(data.Status),
		Conditions:          data.Conditions,
		Schedule:            data.Schedule,
		Channels:            channels,
		Title:               data.Title,
		Message:             data.Message,
		AlertData:           data.AlertData,
		DeliveryAttempts:    data.DeliveryAttempts,
		MaxDeliveryAttempts: data.MaxDeliveryAttempts,
		ScheduledAt:         data.ScheduledAt,
		SentAt:              data.SentAt,
		ExpiresAt:           data.ExpiresAt,
		Version:             data.Version,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
