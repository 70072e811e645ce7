package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChatSession stores the transcript of a support-chat conversation. The bot
// that produces replies is an external collaborator; this table only keeps
// the history so users can revisit past conversations.
type ChatSession struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID      `gorm:"index;not null" json:"user_id"`
	User     *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Messages datatypes.JSON `gorm:"column:messages" json:"messages"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

func (cs *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	return nil
}
