package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

type WellbeingRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.WellbeingRecord) ([]*types.WellbeingRecord, error)
	// GetByUserSince returns the user's records created at or after the cutoff,
	// oldest first, which is the ordering the engine expects.
	GetByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*types.WellbeingRecord, error)
	GetAllSince(ctx context.Context, tx *gorm.DB, since time.Time) ([]*types.WellbeingRecord, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type wellbeingRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWellbeingRecordRepo(db *gorm.DB, baseLog *logger.Logger) WellbeingRecordRepo {
	return &wellbeingRecordRepo{db: db, log: baseLog.With("repo", "WellbeingRecordRepo")}
}

func (wr *wellbeingRecordRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.WellbeingRecord) ([]*types.WellbeingRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	if len(records) == 0 {
		return []*types.WellbeingRecord{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (wr *wellbeingRecordRepo) GetByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*types.WellbeingRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	var results []*types.WellbeingRecord
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *wellbeingRecordRepo) GetAllSince(ctx context.Context, tx *gorm.DB, since time.Time) ([]*types.WellbeingRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	var results []*types.WellbeingRecord
	if err := transaction.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *wellbeingRecordRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.WellbeingRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
