package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/engine"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/requestdata"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/utils"
)

// minOrgRecords is the smallest record set an organizational report accepts;
// below this the aggregates are too noisy to publish.
const minOrgRecords = 10

const orgReportCacheKey = "analytics:organizational"

type AnalyticsConfig struct {
	// AnonymizeSalt feeds the user-id pseudonyms in organizational reports.
	AnonymizeSalt string
	// CacheTTL bounds how stale a cached organizational report may be.
	CacheTTL time.Duration
}

type OrganizationalReport struct {
	GeneratedAt     time.Time            `json:"generated_at"`
	WindowDays      int                  `json:"window_days"`
	Stats           engine.StatsResult   `json:"stats"`
	RiskProfiles    engine.ClusterResult `json:"risk_profiles"`
	Recommendations []string             `json:"recommendations"`
}

type PersonalSummary struct {
	RecordsAnalyzed int                           `json:"records_analyzed"`
	Metrics         map[string]engine.TrendResult `json:"metric_trends"`
	Averages        map[string]float64            `json:"averages"`
	RiskTrend       *engine.TrendResult           `json:"risk_trend,omitempty"`
}

type AnalyticsService interface {
	// Organizational builds the anonymized company-wide report over the last
	// windowDays of records. Results are cached when Redis is configured.
	Organizational(ctx context.Context, windowDays int) (*OrganizationalReport, error)
	Personal(ctx context.Context, windowDays int) (*PersonalSummary, error)
}

type analyticsService struct {
	db         *gorm.DB
	log        *logger.Logger
	recordRepo repos.WellbeingRecordRepo
	userRepo   repos.UserRepo
	rdb        *goredis.Client
	cfg        AnalyticsConfig
}

// NewAnalyticsService accepts a nil redis client; caching is then skipped.
func NewAnalyticsService(db *gorm.DB, log *logger.Logger, recordRepo repos.WellbeingRecordRepo, userRepo repos.UserRepo, rdb *goredis.Client, cfg AnalyticsConfig) AnalyticsService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 15 * time.Minute
	}
	return &analyticsService{
		db:         db,
		log:        log.With("service", "AnalyticsService"),
		recordRepo: recordRepo,
		userRepo:   userRepo,
		rdb:        rdb,
		cfg:        cfg,
	}
}

func (s *analyticsService) Organizational(ctx context.Context, windowDays int) (*OrganizationalReport, error) {
	if windowDays <= 0 {
		windowDays = historyDays
	}

	if cached := s.cachedReport(ctx, windowDays); cached != nil {
		return cached, nil
	}

	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	records, err := s.recordRepo.GetAllSince(ctx, nil, since)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	if len(records) < minOrgRecords {
		return nil, fmt.Errorf("%w: need at least %d records, have %d", engine.ErrInsufficientData, minOrgRecords, len(records))
	}

	users, err := s.userRepo.ListActive(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	departments := make(map[string]string, len(users))
	for _, u := range users {
		dept := u.Department
		if dept == "" {
			dept = "unassigned"
		}
		departments[u.ID.String()] = dept
	}

	rows := make([]engine.StatRecord, len(records))
	byUser := map[string][]*types.WellbeingRecord{}
	for i, rec := range records {
		anon := utils.AnonymizeUserID(rec.UserID, s.cfg.AnonymizeSalt)
		rows[i] = engine.StatRecord{
			ID:        anon,
			Group:     departments[rec.UserID.String()],
			Mood:      float64(rec.MoodScore),
			Energy:    float64(rec.EnergyScore),
			Stress:    float64(rec.StressScore),
			Sleep:     float64(rec.SleepQuality),
			WorkHours: rec.WorkHours,
			Risk:      rec.BurnoutRiskScore,
		}
		byUser[anon] = append(byUser[anon], rec)
	}

	stats, err := engine.AggregateStatistics(rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate statistics: %w", err)
	}

	vectors, err := s.extractCohortFeatures(ctx, byUser)
	if err != nil {
		return nil, err
	}
	profiles, err := engine.ClusterProfiles(vectors, engine.DefaultProfileCount)
	if err != nil {
		return nil, fmt.Errorf("cluster risk profiles: %w", err)
	}

	report := &OrganizationalReport{
		GeneratedAt:     time.Now().UTC(),
		WindowDays:      windowDays,
		Stats:           stats,
		RiskProfiles:    profiles,
		Recommendations: orgRecommendations(stats.Summary),
	}
	s.cacheReport(ctx, windowDays, report)
	return report, nil
}

// extractCohortFeatures runs per-user feature extraction in parallel; each
// user's history is independent.
func (s *analyticsService) extractCohortFeatures(ctx context.Context, byUser map[string][]*types.WellbeingRecord) (map[string]engine.FeatureVector, error) {
	type extracted struct {
		id string
		fv engine.FeatureVector
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	results := make(chan extracted, len(byUser))

	for id, history := range byUser {
		id, history := id, history
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fv, err := engine.ExtractFeatures(history, engine.DefaultWindows())
			if err != nil {
				// One bad history must not sink the whole report.
				s.log.Warn("Skipping user in cohort extraction", "user", id, "error", err)
				return nil
			}
			results <- extracted{id: id, fv: fv}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	vectors := make(map[string]engine.FeatureVector, len(byUser))
	for r := range results {
		vectors[r.id] = r.fv
	}
	return vectors, nil
}

func (s *analyticsService) Personal(ctx context.Context, windowDays int) (*PersonalSummary, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not set in context")
	}
	if windowDays <= 0 {
		windowDays = historyDays
	}
	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	history, err := s.recordRepo.GetByUserSince(ctx, nil, rd.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: no check-ins recorded yet", engine.ErrInsufficientData)
	}

	metrics := map[string]func(*types.WellbeingRecord) float64{
		"mood_score":    func(r *types.WellbeingRecord) float64 { return float64(r.MoodScore) },
		"energy_score":  func(r *types.WellbeingRecord) float64 { return float64(r.EnergyScore) },
		"stress_score":  func(r *types.WellbeingRecord) float64 { return float64(r.StressScore) },
		"sleep_quality": func(r *types.WellbeingRecord) float64 { return float64(r.SleepQuality) },
		"work_hours":    func(r *types.WellbeingRecord) float64 { return r.WorkHours },
	}

	summary := &PersonalSummary{
		RecordsAnalyzed: len(history),
		Metrics:         make(map[string]engine.TrendResult, len(metrics)),
		Averages:        make(map[string]float64, len(metrics)),
	}
	for name, sel := range metrics {
		series := make([]float64, len(history))
		var sum float64
		for i, rec := range history {
			series[i] = sel(rec)
			sum += series[i]
		}
		opts := engine.TrendOptions{HigherIsWorse: name == "stress_score" || name == "work_hours"}
		summary.Metrics[name] = engine.AnalyzeTrend(series, opts)
		summary.Averages[name] = sum / float64(len(history))
	}

	var riskSeries []float64
	for _, rec := range history {
		if rec.BurnoutRiskScore != nil {
			riskSeries = append(riskSeries, *rec.BurnoutRiskScore)
		}
	}
	if len(riskSeries) > 0 {
		trend := engine.AnalyzeTrend(riskSeries, engine.TrendOptions{HigherIsWorse: true})
		summary.RiskTrend = &trend
	}
	return summary, nil
}

func (s *analyticsService) cachedReport(ctx context.Context, windowDays int) *OrganizationalReport {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, fmt.Sprintf("%s:%d", orgReportCacheKey, windowDays)).Bytes()
	if err != nil {
		return nil
	}
	var report OrganizationalReport
	if err := json.Unmarshal(raw, &report); err != nil {
		s.log.Warn("Discarding unreadable cached report", "error", err)
		return nil
	}
	return &report
}

func (s *analyticsService) cacheReport(ctx context.Context, windowDays int, report *OrganizationalReport) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	key := fmt.Sprintf("%s:%d", orgReportCacheKey, windowDays)
	if err := s.rdb.Set(ctx, key, raw, s.cfg.CacheTTL).Err(); err != nil {
		s.log.Warn("Failed to cache organizational report", "error", err)
	}
}

// orgRecommendations turns the summary indicators into actionable guidance
// for the organization, following the original reporting rules.
func orgRecommendations(summary engine.OrgSummary) []string {
	var out []string
	if summary.HighStressPct > 30 {
		out = append(out, "Implementar programa de gestão de estresse: mais de 30% dos registros indicam estresse elevado.")
	}
	if summary.LowMoodPct > 30 {
		out = append(out, "Promover ações de engajamento e reconhecimento: humor baixo em parcela expressiva da equipe.")
	}
	if summary.OvertimePct > 25 {
		out = append(out, "Revisar a política de horas extras: mais de 25% dos registros excedem 9 horas de trabalho.")
	}
	if summary.OvertimeTest != nil && summary.OvertimeTest.Significant && summary.OvertimeTest.TStat > 0 {
		out = append(out, "Horas extras estão associadas a níveis de estresse significativamente maiores; priorizar redistribuição de carga.")
	}
	if len(out) == 0 {
		out = append(out, "Indicadores dentro das faixas esperadas; manter o acompanhamento contínuo.")
	}
	return out
}
