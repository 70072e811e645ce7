package engine

import (
	"fmt"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

// Windows configures the short and long rolling windows, counted in records
// (one check-in per day makes them days).
type Windows struct {
	Short int
	Long  int
}

func DefaultWindows() Windows {
	return Windows{Short: 7, Long: 30}
}

const (
	// targetSleepHours is the nightly sleep target used for sleep debt.
	targetSleepHours = 8.0
	// sleepHoursPerQualityPoint converts the 1-10 sleep quality scale into
	// approximate hours slept (quality 10 ~ a full 8h night).
	sleepHoursPerQualityPoint = 0.8
	// standardWorkDayHours anchors the overwork ratio.
	standardWorkDayHours = 8.0
)

// maxDailySleepDebt is the worst per-night debt the quality scale can express.
const maxDailySleepDebt = targetSleepHours - 1*sleepHoursPerQualityPoint

// FeatureVector carries the engineered features for one user. It is derived
// per scoring call and never persisted.
type FeatureVector struct {
	AvgMoodShort   float64
	AvgEnergyShort float64
	AvgStressShort float64
	AvgSleepShort  float64
	AvgWorkShort   float64

	StdMoodShort   float64
	StdEnergyShort float64
	StdStressShort float64
	StdSleepShort  float64

	AvgMoodLong   float64
	AvgEnergyLong float64
	AvgStressLong float64
	AvgSleepLong  float64
	AvgWorkLong   float64

	// Day-over-day deltas of the latest record against the one before it.
	// Zero when only one record exists.
	DeltaMood   float64
	DeltaEnergy float64
	DeltaStress float64
	DeltaSleep  float64

	// SleepDebt is accumulated over the short window: per record,
	// max(0, target - hours), with hours derived from sleep quality.
	SleepDebt float64
	// OverworkRatio is mean work hours over the short window divided by a
	// standard 8h day.
	OverworkRatio float64

	// Short-window means compared against the immediately preceding short
	// window. Only meaningful when HasTrend is set (needs two full windows).
	MoodTrend   float64
	EnergyTrend float64
	StressTrend float64
	HasTrend    bool

	SampleCount      int
	ShortSampleCount int
}

// FeatureDims names the dimensions of Vector, in order.
var FeatureDims = []string{
	"avg_mood",
	"avg_energy",
	"avg_stress",
	"avg_sleep",
	"avg_work_hours",
	"std_stress",
	"sleep_debt",
	"overwork_ratio",
}

// Vector flattens the features used for risk-profile clustering.
func (fv FeatureVector) Vector() []float64 {
	return []float64{
		fv.AvgMoodShort,
		fv.AvgEnergyShort,
		fv.AvgStressShort,
		fv.AvgSleepShort,
		fv.AvgWorkShort,
		fv.StdStressShort,
		fv.SleepDebt,
		fv.OverworkRatio,
	}
}

// ExtractFeatures derives a FeatureVector from a user's history, ordered
// oldest to newest. Histories shorter than the configured windows are
// computed over whatever exists; only an empty history is an error.
func ExtractFeatures(history []*types.WellbeingRecord, w Windows) (FeatureVector, error) {
	if w.Short <= 0 || w.Long <= 0 {
		return FeatureVector{}, fmt.Errorf("%w: window sizes must be positive", ErrInvalidInput)
	}
	if w.Long < w.Short {
		return FeatureVector{}, fmt.Errorf("%w: long window %d smaller than short window %d", ErrInvalidInput, w.Long, w.Short)
	}
	if err := ValidateHistory(history); err != nil {
		return FeatureVector{}, err
	}

	short := tail(history, w.Short)
	long := tail(history, w.Long)

	fv := FeatureVector{
		AvgMoodShort:   mean(column(short, metricMood)),
		AvgEnergyShort: mean(column(short, metricEnergy)),
		AvgStressShort: mean(column(short, metricStress)),
		AvgSleepShort:  mean(column(short, metricSleep)),
		AvgWorkShort:   mean(column(short, metricWork)),

		StdMoodShort:   stddev(column(short, metricMood)),
		StdEnergyShort: stddev(column(short, metricEnergy)),
		StdStressShort: stddev(column(short, metricStress)),
		StdSleepShort:  stddev(column(short, metricSleep)),

		AvgMoodLong:   mean(column(long, metricMood)),
		AvgEnergyLong: mean(column(long, metricEnergy)),
		AvgStressLong: mean(column(long, metricStress)),
		AvgSleepLong:  mean(column(long, metricSleep)),
		AvgWorkLong:   mean(column(long, metricWork)),

		SampleCount:      len(history),
		ShortSampleCount: len(short),
	}

	if len(history) >= 2 {
		latest := history[len(history)-1]
		previous := history[len(history)-2]
		fv.DeltaMood = float64(latest.MoodScore - previous.MoodScore)
		fv.DeltaEnergy = float64(latest.EnergyScore - previous.EnergyScore)
		fv.DeltaStress = float64(latest.StressScore - previous.StressScore)
		fv.DeltaSleep = float64(latest.SleepQuality - previous.SleepQuality)
	}

	for _, rec := range short {
		sleptHours := float64(rec.SleepQuality) * sleepHoursPerQualityPoint
		if debt := targetSleepHours - sleptHours; debt > 0 {
			fv.SleepDebt += debt
		}
	}
	fv.OverworkRatio = fv.AvgWorkShort / standardWorkDayHours

	// Trend needs two full short windows, following the original 14-day rule.
	if len(history) >= 2*w.Short {
		previous := history[len(history)-2*w.Short : len(history)-w.Short]
		fv.MoodTrend = fv.AvgMoodShort - mean(column(previous, metricMood))
		fv.EnergyTrend = fv.AvgEnergyShort - mean(column(previous, metricEnergy))
		fv.StressTrend = fv.AvgStressShort - mean(column(previous, metricStress))
		fv.HasTrend = true
	}

	return fv, nil
}

type metricSelector func(*types.WellbeingRecord) float64

func metricMood(r *types.WellbeingRecord) float64   { return float64(r.MoodScore) }
func metricEnergy(r *types.WellbeingRecord) float64 { return float64(r.EnergyScore) }
func metricStress(r *types.WellbeingRecord) float64 { return float64(r.StressScore) }
func metricSleep(r *types.WellbeingRecord) float64  { return float64(r.SleepQuality) }
func metricWork(r *types.WellbeingRecord) float64   { return r.WorkHours }

func column(records []*types.WellbeingRecord, sel metricSelector) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		out = append(out, sel(r))
	}
	return out
}

func tail(records []*types.WellbeingRecord, n int) []*types.WellbeingRecord {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}
