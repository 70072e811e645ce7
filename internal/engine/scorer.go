package engine

import (
	"sort"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

// Factor names reported by the scorer.
const (
	FactorStress   = "stress"
	FactorEnergy   = "energy"
	FactorMood     = "mood"
	FactorSleep    = "sleep"
	FactorOverwork = "overwork"
	FactorTrend    = "trend_deterioration"
)

// Model weights, fixed and inspectable. They sum to 1; when a term is not
// computable (no trend history) its weight is redistributed proportionally
// across the remaining terms.
const (
	WeightStress   = 0.30
	WeightEnergy   = 0.20
	WeightMood     = 0.15
	WeightSleep    = 0.15
	WeightOverwork = 0.10
	WeightTrend    = 0.10
)

// AlertThreshold is the risk score above which the caller should raise an
// alert. The decision lives here; persistence belongs to the caller.
const AlertThreshold = 0.7

// trendSaturationPoints is the average per-window deterioration (in scale
// points) at which the trend term saturates at 1.
const trendSaturationPoints = 3.0

type Factor struct {
	Name string `json:"name"`
	// Contribution is this factor's normalized share of the final score.
	Contribution float64 `json:"contribution"`
	// Value is the factor's normalized risk term in [0,1].
	Value float64 `json:"value"`
}

type ScoreResult struct {
	RiskScore   float64             `json:"risk_score"`
	Severity    types.AlertSeverity `json:"severity"`
	AlertWorthy bool                `json:"alert_worthy"`
	Factors     []Factor            `json:"contributing_factors"`
}

// Score combines the latest record and its feature vector into a bounded
// burnout risk score. Positive signals (mood, energy, sleep) are
// inverse-mapped so that high values mean low risk; stress, overwork and
// sleep debt map directly. Identical inputs always produce identical output.
func Score(latest *types.WellbeingRecord, fv FeatureVector) (ScoreResult, error) {
	if err := ValidateRecord(latest); err != nil {
		return ScoreResult{}, err
	}

	type term struct {
		name   string
		weight float64
		value  float64
	}

	sleepRisk := (1 - norm10(fv.AvgSleepShort)) / 2
	if fv.ShortSampleCount > 0 {
		dailyDebt := fv.SleepDebt / float64(fv.ShortSampleCount)
		sleepRisk += clamp01(dailyDebt/maxDailySleepDebt) / 2
	}

	terms := []term{
		{FactorStress, WeightStress, norm10(fv.AvgStressShort)},
		{FactorEnergy, WeightEnergy, 1 - norm10(fv.AvgEnergyShort)},
		{FactorMood, WeightMood, 1 - norm10(fv.AvgMoodShort)},
		{FactorSleep, WeightSleep, clamp01(sleepRisk)},
		{FactorOverwork, WeightOverwork, clamp01((fv.AvgWorkShort - standardWorkDayHours) / 4)},
	}
	if fv.HasTrend {
		deterioration := (fv.StressTrend - fv.MoodTrend - fv.EnergyTrend) / 3
		terms = append(terms, term{FactorTrend, WeightTrend, clamp01(deterioration / trendSaturationPoints)})
	}

	var weightSum float64
	for _, t := range terms {
		weightSum += t.weight
	}

	var score float64
	factors := make([]Factor, 0, len(terms))
	for _, t := range terms {
		effective := t.weight / weightSum
		score += effective * t.value
		factors = append(factors, Factor{Name: t.name, Contribution: effective * t.value, Value: t.value})
	}
	score = clamp01(score)

	if score > 0 {
		for i := range factors {
			factors[i].Contribution /= score
		}
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Contribution > factors[j].Contribution
	})

	return ScoreResult{
		RiskScore:   score,
		Severity:    SeverityForScore(score),
		AlertWorthy: score > AlertThreshold,
		Factors:     factors,
	}, nil
}

// SeverityForScore maps a risk score onto the alert severity scale.
func SeverityForScore(score float64) types.AlertSeverity {
	switch {
	case score < 0.3:
		return types.AlertLow
	case score < 0.6:
		return types.AlertMedium
	case score < 0.9:
		return types.AlertHigh
	default:
		return types.AlertCritical
	}
}
