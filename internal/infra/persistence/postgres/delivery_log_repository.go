package postgres

import (
	"context"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/repository"
	"pricealert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const deliveryLogBatchSize = 100

// deliveryLogRepository implements the repository.DeliveryLogRepository interface.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// NewDeliveryHistory exposes the read side of the delivery log to the suppression policy.
func NewDeliveryHistory(logs repository.DeliveryLogRepository) repository.DeliveryHistory {
	return logs
}

// AppendLogs persists delivery log entries in batches.
func (repo *deliveryLogRepository) AppendLogs(ctx context.Context, logs []*entity.DeliveryLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, deliveryLogBatchSize).Error; err != nil {
		return errors.Wrap(err, "failed to append delivery logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
		logs[i].CreatedAt = logM.CreatedAt
	}

	return nil
}

// FindLogsByAlert returns the most recent log entries of an alert, newest first.
func (repo *deliveryLogRepository) FindLogsByAlert(ctx context.Context, alertID uuid.UUID, limit int) ([]*entity.DeliveryLog, error) {
	var logModels []*model.DeliveryLogModel

	query := repo.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery logs by alert")
	}

	logs := make([]*entity.DeliveryLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toDeliveryLogDomain(logM))
	}

	return logs, nil
}

// LastSuccessfulDelivery returns the latest successful delivery to a user about a product.
func (repo *deliveryLogRepository) LastSuccessfulDelivery(ctx context.Context, userID uuid.UUID, productID string) (*time.Time, error) {
	var times []time.Time

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryLogModel{}).
		Where("user_id = ? AND product_id = ? AND success = ?", userID, productID, true).
		Order("created_at DESC").
		Limit(1).
		Pluck("created_at", &times).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find last successful delivery")
	}

	if len(times) == 0 {
		return nil, nil
	}

	return &times[0], nil
}

// CountAlertPassesSince counts distinct passes of an alert with a successful channel since the given time.
func (repo *deliveryLogRepository) CountAlertPassesSince(ctx context.Context, alertID uuid.UUID, since time.Time) (int, error) {
	return repo.countPasses(ctx, "alert_id = ?", alertID, since)
}

// CountUserPassesSince counts distinct successful passes across a user's alerts since the given time.
func (repo *deliveryLogRepository) CountUserPassesSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return repo.countPasses(ctx, "user_id = ?", userID, since)
}

func (repo *deliveryLogRepository) countPasses(ctx context.Context, scope string, id uuid.UUID, since time.Time) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryLogModel{}).
		Where(scope, id).
		Where("success = ? AND created_at >= ?", true, since).
		Distinct("pass_id").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count delivery passes")
	}

	return int(count), nil
}

// --- Mapper Functions ---

func toDeliveryLogDomain(data *model.DeliveryLogModel) *entity.DeliveryLog {
	if data == nil {
		return nil
	}

	return &entity.DeliveryLog{
		ID:             data.ID,
		AlertID:        data.AlertID,
		UserID:         data.UserID,
		ProductID:      data.ProductID,
		PassID:         data.PassID,
		Channel:        entity.NotificationChannel(data.Channel),
		Success:        data.Success,
		ErrorMessage:   data.ErrorMessage,
		MessageID:      data.MessageID,
		DeliveryTimeMs: data.DeliveryTimeMs,
		CreatedAt:      data.CreatedAt,
	}
}

func fromDeliveryLogDomain(data *entity.DeliveryLog) *model.DeliveryLogModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLogModel{
		ID:             data.ID,
		AlertID:        data.AlertID,
		UserID:         data.UserID,
		ProductID:      data.ProductID,
		PassID:         data.PassID,
		Channel:        string(data.Channel),
		Success:        data.Success,
		ErrorMessage:   data.ErrorMessage,
		MessageID:      data.MessageID,
		DeliveryTimeMs: data.DeliveryTimeMs,
		CreatedAt:      data.CreatedAt,
	}
}
