package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

type ChatSessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, session *types.ChatSession) (*types.ChatSession, error)
	GetByID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (*types.ChatSession, error)
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChatSession, error)
	UpdateMessages(ctx context.Context, tx *gorm.DB, session *types.ChatSession) error
}

type chatSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatSessionRepo(db *gorm.DB, baseLog *logger.Logger) ChatSessionRepo {
	return &chatSessionRepo{db: db, log: baseLog.With("repo", "ChatSessionRepo")}
}

func (cr *chatSessionRepo) Create(ctx context.Context, tx *gorm.DB, session *types.ChatSession) (*types.ChatSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (cr *chatSessionRepo) GetByID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (*types.ChatSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.ChatSession
	if err := transaction.WithContext(ctx).
		Where("id = ?", sessionID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *chatSessionRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChatSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ChatSession
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *chatSessionRepo) UpdateMessages(ctx context.Context, tx *gorm.DB, session *types.ChatSession) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.ChatSession{}).
		Where("id = ?", session.ID).
		Update("messages", session.Messages).Error
}
