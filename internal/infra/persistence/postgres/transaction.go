package postgres

import (
	"context"

	"pricealert/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one GORM transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewAlertRepository creates an alert repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAlertRepository() repository.AlertRepository {
	return NewAlertRepository(f.tx)
}

// NewDeliveryLogRepository creates a delivery log repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDeliveryLogRepository() repository.DeliveryLogRepository {
	return NewDeliveryLogRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. GORM rolls back when fn returns an error or panics,
// and the error from fn is returned unchanged so callers can match repository sentinels.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
}
