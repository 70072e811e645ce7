package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WellbeingRecord is one daily check-in. The four subjective scores use a
// 1-10 scale; work hours are the hours worked that day. SentimentScore and
// BurnoutRiskScore are derived values: sentiment comes from the NLP
// collaborator when notes are present, the burnout risk score from the
// engine at creation time. Records are never mutated after scoring.
type WellbeingRecord struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"index;not null" json:"user_id"`
	User   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	MoodScore    int     `gorm:"not null;column:mood_score" json:"mood_score"`
	EnergyScore  int     `gorm:"not null;column:energy_score" json:"energy_score"`
	StressScore  int     `gorm:"not null;column:stress_score" json:"stress_score"`
	SleepQuality int     `gorm:"not null;column:sleep_quality" json:"sleep_quality"`
	WorkHours    float64 `gorm:"not null;column:work_hours" json:"work_hours"`

	Notes            string   `gorm:"column:notes" json:"notes,omitempty"`
	SentimentScore   *float64 `gorm:"column:sentiment_score" json:"sentiment_score,omitempty"`
	BurnoutRiskScore *float64 `gorm:"column:burnout_risk_score" json:"burnout_risk_score,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (WellbeingRecord) TableName() string {
	return "wellbeing_records"
}

func (r *WellbeingRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
