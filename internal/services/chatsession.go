package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/requestdata"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

// ChatMessage is one transcript entry. The bot replies come from an
// external collaborator; this service only stores the exchange.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatSessionService interface {
	StartSession(ctx context.Context, first ChatMessage) (*types.ChatSession, error)
	AppendMessages(ctx context.Context, sessionID uuid.UUID, messages []ChatMessage) (*types.ChatSession, error)
	ListSessions(ctx context.Context) ([]*types.ChatSession, error)
}

type chatSessionService struct {
	db          *gorm.DB
	log         *logger.Logger
	sessionRepo repos.ChatSessionRepo
}

func NewChatSessionService(db *gorm.DB, log *logger.Logger, sessionRepo repos.ChatSessionRepo) ChatSessionService {
	return &chatSessionService{
		db:          db,
		log:         log.With("service", "ChatSessionService"),
		sessionRepo: sessionRepo,
	}
}

func (s *chatSessionService) StartSession(ctx context.Context, first ChatMessage) (*types.ChatSession, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not set in context")
	}
	raw, err := marshalMessages([]ChatMessage{first})
	if err != nil {
		return nil, err
	}
	return s.sessionRepo.Create(ctx, nil, &types.ChatSession{
		UserID:   rd.UserID,
		Messages: raw,
	})
}

func (s *chatSessionService) AppendMessages(ctx context.Context, sessionID uuid.UUID, messages []ChatMessage) (*types.ChatSession, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not set in context")
	}
	session, err := s.sessionRepo.GetByID(ctx, nil, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	// A session belonging to someone else reads as nonexistent.
	if session.UserID != rd.UserID {
		return nil, fmt.Errorf("session: %w", ErrNotFound)
	}

	var transcript []ChatMessage
	if len(session.Messages) > 0 {
		if err := json.Unmarshal(session.Messages, &transcript); err != nil {
			return nil, fmt.Errorf("decode transcript: %w", err)
		}
	}
	transcript = append(transcript, messages...)
	raw, err := marshalMessages(transcript)
	if err != nil {
		return nil, err
	}
	session.Messages = raw
	if err := s.sessionRepo.UpdateMessages(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

func (s *chatSessionService) ListSessions(ctx context.Context) ([]*types.ChatSession, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not set in context")
	}
	return s.sessionRepo.GetByUser(ctx, nil, rd.UserID)
}

func marshalMessages(messages []ChatMessage) (datatypes.JSON, error) {
	raw, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("encode transcript: %w", err)
	}
	return datatypes.JSON(raw), nil
}
