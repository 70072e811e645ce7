package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

type AlertRepo interface {
	Create(ctx context.Context, tx *gorm.DB, alert *types.Alert) (*types.Alert, error)
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, unresolvedOnly bool) ([]*types.Alert, error)
	Resolve(ctx context.Context, tx *gorm.DB, alertID uuid.UUID) error
}

type alertRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAlertRepo(db *gorm.DB, baseLog *logger.Logger) AlertRepo {
	return &alertRepo{db: db, log: baseLog.With("repo", "AlertRepo")}
}

func (ar *alertRepo) Create(ctx context.Context, tx *gorm.DB, alert *types.Alert) (*types.Alert, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if err := transaction.WithContext(ctx).Create(alert).Error; err != nil {
		return nil, err
	}
	return alert, nil
}

func (ar *alertRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, unresolvedOnly bool) ([]*types.Alert, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	query := transaction.WithContext(ctx).Where("user_id = ?", userID)
	if unresolvedOnly {
		query = query.Where("resolved = ?", false)
	}
	var results []*types.Alert
	if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *alertRepo) Resolve(ctx context.Context, tx *gorm.DB, alertID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Alert{}).
		Where("id = ?", alertID).
		Update("resolved", true).Error
}
