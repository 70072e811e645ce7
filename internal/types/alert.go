package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertSeverity string

const (
	AlertLow      AlertSeverity = "low"
	AlertMedium   AlertSeverity = "medium"
	AlertHigh     AlertSeverity = "high"
	AlertCritical AlertSeverity = "critical"
)

type Alert struct {
	ID       uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID     `gorm:"index;not null" json:"user_id"`
	User     *User         `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Severity AlertSeverity `gorm:"not null;column:severity" json:"severity"`
	Message  string        `gorm:"not null;column:message" json:"message"`
	Resolved bool          `gorm:"not null;default:false;column:resolved" json:"resolved"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Alert) TableName() string {
	return "alerts"
}

func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
