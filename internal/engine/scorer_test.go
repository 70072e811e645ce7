package engine

import (
	"testing"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkin(mood, energy, stress, sleep int, work float64) *types.WellbeingRecord {
	return &types.WellbeingRecord{
		MoodScore:    mood,
		EnergyScore:  energy,
		StressScore:  stress,
		SleepQuality: sleep,
		WorkHours:    work,
	}
}

func scoreSingle(t *testing.T, rec *types.WellbeingRecord) ScoreResult {
	t.Helper()
	fv, err := ExtractFeatures([]*types.WellbeingRecord{rec}, DefaultWindows())
	require.NoError(t, err)
	result, err := Score(rec, fv)
	require.NoError(t, err)
	return result
}

func TestScore_HighRiskCheckin(t *testing.T) {
	result := scoreSingle(t, checkin(2, 2, 9, 3, 12))

	assert.InDelta(t, 0.883, result.RiskScore, 0.005)
	assert.Equal(t, types.AlertHigh, result.Severity)
	assert.True(t, result.AlertWorthy)
	require.NotEmpty(t, result.Factors)
	assert.Equal(t, FactorStress, result.Factors[0].Name)
}

func TestScore_HealthyCheckin(t *testing.T) {
	result := scoreSingle(t, checkin(8, 8, 2, 8, 7))

	assert.Less(t, result.RiskScore, 0.3)
	assert.Equal(t, types.AlertLow, result.Severity)
	assert.False(t, result.AlertWorthy)
}

func TestScore_Bounded(t *testing.T) {
	cases := []*types.WellbeingRecord{
		checkin(1, 1, 10, 1, 24),
		checkin(10, 10, 1, 10, 0),
		checkin(5, 5, 5, 5, 8),
	}
	for _, rec := range cases {
		result := scoreSingle(t, rec)
		assert.GreaterOrEqual(t, result.RiskScore, 0.0)
		assert.LessOrEqual(t, result.RiskScore, 1.0)
	}
}

func TestScore_StressMonotonic(t *testing.T) {
	// All else equal, more stress never lowers the score.
	prev := -1.0
	for stress := 1; stress <= 10; stress++ {
		result := scoreSingle(t, checkin(5, 5, stress, 5, 8))
		assert.GreaterOrEqual(t, result.RiskScore, prev, "stress %d", stress)
		prev = result.RiskScore
	}
}

func TestScore_Deterministic(t *testing.T) {
	rec := checkin(4, 6, 7, 5, 10)
	first := scoreSingle(t, rec)
	second := scoreSingle(t, rec)
	assert.Equal(t, first, second)
}

func TestScore_ContributionsSumToOne(t *testing.T) {
	result := scoreSingle(t, checkin(3, 4, 8, 4, 11))

	var total float64
	for _, f := range result.Factors {
		total += f.Contribution
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestScore_RejectsOutOfRange(t *testing.T) {
	fv := FeatureVector{}
	_, err := Score(checkin(0, 5, 5, 5, 8), fv)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Score(checkin(5, 5, 5, 5, 25), fv)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSeverityForScore_Bands(t *testing.T) {
	assert.Equal(t, types.AlertLow, SeverityForScore(0.0))
	assert.Equal(t, types.AlertLow, SeverityForScore(0.29))
	assert.Equal(t, types.AlertMedium, SeverityForScore(0.3))
	assert.Equal(t, types.AlertMedium, SeverityForScore(0.59))
	assert.Equal(t, types.AlertHigh, SeverityForScore(0.6))
	assert.Equal(t, types.AlertHigh, SeverityForScore(0.89))
	assert.Equal(t, types.AlertCritical, SeverityForScore(0.9))
	assert.Equal(t, types.AlertCritical, SeverityForScore(1.0))
}
