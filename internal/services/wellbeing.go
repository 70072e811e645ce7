package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/engine"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/requestdata"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

// historyDays is how much history feeds a scoring call, matching the long
// feature window.
const historyDays = 30

type CreateRecordInput struct {
	MoodScore      int      `json:"mood_score" binding:"required"`
	EnergyScore    int      `json:"energy_score" binding:"required"`
	StressScore    int      `json:"stress_score" binding:"required"`
	SleepQuality   int      `json:"sleep_quality" binding:"required"`
	WorkHours      float64  `json:"work_hours"`
	Notes          string   `json:"notes"`
	SentimentScore *float64 `json:"sentiment_score"`
}

type RecordResult struct {
	Record *types.WellbeingRecord `json:"record"`
	Score  engine.ScoreResult     `json:"score"`
}

type WellbeingService interface {
	// CreateRecord validates a check-in, scores it against the caller's
	// recent history and persists it with its burnout risk score. An alert
	// row is created when the scorer flags the check-in.
	CreateRecord(ctx context.Context, input CreateRecordInput) (*RecordResult, error)
	History(ctx context.Context, days int) ([]*types.WellbeingRecord, error)
}

type wellbeingService struct {
	db         *gorm.DB
	log        *logger.Logger
	recordRepo repos.WellbeingRecordRepo
	alertRepo  repos.AlertRepo
}

func NewWellbeingService(db *gorm.DB, log *logger.Logger, recordRepo repos.WellbeingRecordRepo, alertRepo repos.AlertRepo) WellbeingService {
	return &wellbeingService{
		db:         db,
		log:        log.With("service", "WellbeingService"),
		recordRepo: recordRepo,
		alertRepo:  alertRepo,
	}
}

func (ws *wellbeingService) CreateRecord(ctx context.Context, input CreateRecordInput) (*RecordResult, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not set in context")
	}

	record := &types.WellbeingRecord{
		UserID:         rd.UserID,
		MoodScore:      input.MoodScore,
		EnergyScore:    input.EnergyScore,
		StressScore:    input.StressScore,
		SleepQuality:   input.SleepQuality,
		WorkHours:      input.WorkHours,
		Notes:          input.Notes,
		SentimentScore: input.SentimentScore,
	}
	if err := engine.ValidateRecord(record); err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(0, 0, -historyDays)
	history, err := ws.recordRepo.GetByUserSince(ctx, nil, rd.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	history = append(history, record)

	features, err := engine.ExtractFeatures(history, engine.DefaultWindows())
	if err != nil {
		return nil, fmt.Errorf("extract features: %w", err)
	}
	score, err := engine.Score(record, features)
	if err != nil {
		return nil, fmt.Errorf("score record: %w", err)
	}
	risk := score.RiskScore
	record.BurnoutRiskScore = &risk

	err = ws.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ws.recordRepo.Create(ctx, tx, []*types.WellbeingRecord{record}); err != nil {
			return fmt.Errorf("persist record: %w", err)
		}
		if !score.AlertWorthy {
			return nil
		}
		alert := &types.Alert{
			UserID:   rd.UserID,
			Severity: score.Severity,
			Message:  alertMessage(score),
		}
		if _, err := ws.alertRepo.Create(ctx, tx, alert); err != nil {
			return fmt.Errorf("persist alert: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if score.AlertWorthy {
		ws.log.Warn("Alert-worthy check-in", "user_id", rd.UserID, "risk_score", score.RiskScore, "severity", score.Severity)
	}
	return &RecordResult{Record: record, Score: score}, nil
}

func (ws *wellbeingService) History(ctx context.Context, days int) ([]*types.WellbeingRecord, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not set in context")
	}
	if days <= 0 {
		days = historyDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	return ws.recordRepo.GetByUserSince(ctx, nil, rd.UserID, since)
}

func alertMessage(score engine.ScoreResult) string {
	msg := fmt.Sprintf("Burnout risk score %.2f (%s severity)", score.RiskScore, score.Severity)
	if len(score.Factors) > 0 {
		msg += fmt.Sprintf(", main factor: %s", score.Factors[0].Name)
	}
	return msg
}
