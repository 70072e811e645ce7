package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/engine"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/requestdata"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

// fullConfidenceRecords is the history size at which prediction confidence
// saturates: a month of daily check-ins.
const fullConfidenceRecords = 30

const defaultForecastDays = 7

type BurnoutPrediction struct {
	Probability     float64                 `json:"probability"`
	RiskLevel       types.AlertSeverity     `json:"risk_level"`
	Confidence      float64                 `json:"confidence"`
	RecordsAnalyzed int                     `json:"records_analyzed"`
	Factors         []engine.Factor         `json:"contributing_factors"`
	Trend           engine.TrendResult      `json:"trend"`
	Recommendations []engine.Recommendation `json:"recommendations"`
}

type MetricForecast struct {
	Metric    string                `json:"metric"`
	Direction engine.TrendDirection `json:"direction"`
	Slope     float64               `json:"slope"`
	Values    []float64             `json:"values"`
}

type TimeseriesPrediction struct {
	DaysAhead       int              `json:"days_ahead"`
	RecordsAnalyzed int              `json:"records_analyzed"`
	Forecasts       []MetricForecast `json:"forecasts"`
}

type PredictionService interface {
	// Burnout predicts the caller's burnout risk from recent history. It
	// degrades gracefully: a single record still yields a prediction, with
	// confidence scaled by history size.
	Burnout(ctx context.Context) (*BurnoutPrediction, error)
	// Timeseries projects each wellbeing metric daysAhead days forward with
	// per-metric linear fits, clamped to the 1-10 scale.
	Timeseries(ctx context.Context, daysAhead int) (*TimeseriesPrediction, error)
}

type predictionService struct {
	db          *gorm.DB
	log         *logger.Logger
	recordRepo  repos.WellbeingRecordRepo
	recommender *engine.Recommender
}

func NewPredictionService(db *gorm.DB, log *logger.Logger, recordRepo repos.WellbeingRecordRepo, recommender *engine.Recommender) PredictionService {
	return &predictionService{
		db:          db,
		log:         log.With("service", "PredictionService"),
		recordRepo:  recordRepo,
		recommender: recommender,
	}
}

func (ps *predictionService) Burnout(ctx context.Context) (*BurnoutPrediction, error) {
	history, err := ps.callerHistory(ctx)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: no check-ins recorded yet", engine.ErrInsufficientData)
	}

	features, err := engine.ExtractFeatures(history, engine.DefaultWindows())
	if err != nil {
		return nil, fmt.Errorf("extract features: %w", err)
	}
	latest := history[len(history)-1]
	score, err := engine.Score(latest, features)
	if err != nil {
		return nil, fmt.Errorf("score history: %w", err)
	}

	riskSeries := make([]float64, 0, len(history))
	for _, rec := range history {
		if rec.BurnoutRiskScore != nil {
			riskSeries = append(riskSeries, *rec.BurnoutRiskScore)
		}
	}
	trend := engine.AnalyzeTrend(riskSeries, engine.TrendOptions{HigherIsWorse: true})

	return &BurnoutPrediction{
		Probability:     score.RiskScore,
		RiskLevel:       score.Severity,
		Confidence:      math.Min(float64(len(history))/fullConfidenceRecords, 1),
		RecordsAnalyzed: len(history),
		Factors:         score.Factors,
		Trend:           trend,
		Recommendations: ps.recommender.Recommend(score, engine.DefaultRecommendationCount),
	}, nil
}

func (ps *predictionService) Timeseries(ctx context.Context, daysAhead int) (*TimeseriesPrediction, error) {
	if daysAhead <= 0 {
		daysAhead = defaultForecastDays
	}
	history, err := ps.callerHistory(ctx)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: no check-ins recorded yet", engine.ErrInsufficientData)
	}

	metrics := []struct {
		name   string
		series func(*types.WellbeingRecord) float64
	}{
		{"mood_score", func(r *types.WellbeingRecord) float64 { return float64(r.MoodScore) }},
		{"energy_score", func(r *types.WellbeingRecord) float64 { return float64(r.EnergyScore) }},
		{"stress_score", func(r *types.WellbeingRecord) float64 { return float64(r.StressScore) }},
		{"sleep_quality", func(r *types.WellbeingRecord) float64 { return float64(r.SleepQuality) }},
	}

	result := &TimeseriesPrediction{DaysAhead: daysAhead, RecordsAnalyzed: len(history)}
	for _, m := range metrics {
		series := make([]float64, len(history))
		for i, rec := range history {
			series[i] = m.series(rec)
		}
		opts := engine.TrendOptions{HigherIsWorse: m.name == "stress_score"}
		trend := engine.AnalyzeTrend(series, opts)

		// Extend the fitted line day by day, keeping forecasts on scale.
		values := make([]float64, daysAhead)
		for d := 0; d < daysAhead; d++ {
			projected := trend.Forecast + trend.Slope*float64(d)
			values[d] = math.Min(10, math.Max(1, projected))
		}
		result.Forecasts = append(result.Forecasts, MetricForecast{
			Metric:    m.name,
			Direction: trend.Direction,
			Slope:     trend.Slope,
			Values:    values,
		})
	}
	return result, nil
}

func (ps *predictionService) callerHistory(ctx context.Context) ([]*types.WellbeingRecord, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not set in context")
	}
	since := time.Now().UTC().AddDate(0, 0, -historyDays)
	history, err := ps.recordRepo.GetByUserSince(ctx, nil, rd.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return history, nil
}
