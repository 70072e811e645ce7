package engine

import (
	"testing"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatCheckin(rec *types.WellbeingRecord, n int) []*types.WellbeingRecord {
	out := make([]*types.WellbeingRecord, n)
	for i := range out {
		clone := *rec
		out[i] = &clone
	}
	return out
}

func TestExtractFeatures_EmptyHistory(t *testing.T) {
	_, err := ExtractFeatures(nil, DefaultWindows())
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestExtractFeatures_InvalidWindows(t *testing.T) {
	history := []*types.WellbeingRecord{checkin(5, 5, 5, 5, 8)}

	_, err := ExtractFeatures(history, Windows{Short: 0, Long: 30})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ExtractFeatures(history, Windows{Short: 7, Long: 3})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExtractFeatures_ShortWindowMeans(t *testing.T) {
	// 30 old low-stress records followed by 7 high-stress ones: the short
	// window sees only the recent stretch.
	history := repeatCheckin(checkin(7, 7, 3, 7, 8), 30)
	history = append(history, repeatCheckin(checkin(4, 4, 9, 4, 11), 7)...)

	fv, err := ExtractFeatures(history, DefaultWindows())
	require.NoError(t, err)

	assert.InDelta(t, 9.0, fv.AvgStressShort, 1e-9)
	assert.InDelta(t, 11.0, fv.AvgWorkShort, 1e-9)
	assert.Equal(t, 7, fv.ShortSampleCount)
	assert.Equal(t, 37, fv.SampleCount)
	// Long window still mixes both stretches.
	assert.Less(t, fv.AvgStressLong, 9.0)
}

func TestExtractFeatures_SleepDebt(t *testing.T) {
	// Quality 5 ~ 4h slept, 4h nightly debt over 7 nights.
	history := repeatCheckin(checkin(5, 5, 5, 5, 8), 7)

	fv, err := ExtractFeatures(history, DefaultWindows())
	require.NoError(t, err)
	assert.InDelta(t, 28.0, fv.SleepDebt, 1e-9)

	// Quality 10 covers the full target, no debt.
	rested := repeatCheckin(checkin(5, 5, 5, 10, 8), 7)
	fv, err = ExtractFeatures(rested, DefaultWindows())
	require.NoError(t, err)
	assert.Zero(t, fv.SleepDebt)
}

func TestExtractFeatures_Deltas(t *testing.T) {
	history := []*types.WellbeingRecord{
		checkin(6, 6, 4, 6, 8),
		checkin(4, 7, 8, 5, 9),
	}

	fv, err := ExtractFeatures(history, DefaultWindows())
	require.NoError(t, err)
	assert.InDelta(t, -2.0, fv.DeltaMood, 1e-9)
	assert.InDelta(t, 1.0, fv.DeltaEnergy, 1e-9)
	assert.InDelta(t, 4.0, fv.DeltaStress, 1e-9)
	assert.InDelta(t, -1.0, fv.DeltaSleep, 1e-9)
}

func TestExtractFeatures_TrendNeedsTwoWindows(t *testing.T) {
	short := repeatCheckin(checkin(6, 6, 4, 6, 8), 13)
	fv, err := ExtractFeatures(short, DefaultWindows())
	require.NoError(t, err)
	assert.False(t, fv.HasTrend)

	// 14 records: previous week calm, latest week deteriorating.
	history := repeatCheckin(checkin(7, 7, 3, 7, 8), 7)
	history = append(history, repeatCheckin(checkin(5, 5, 6, 5, 10), 7)...)
	fv, err = ExtractFeatures(history, DefaultWindows())
	require.NoError(t, err)
	require.True(t, fv.HasTrend)
	assert.InDelta(t, -2.0, fv.MoodTrend, 1e-9)
	assert.InDelta(t, 3.0, fv.StressTrend, 1e-9)
}

func TestExtractFeatures_OverworkRatio(t *testing.T) {
	history := repeatCheckin(checkin(5, 5, 5, 5, 12), 5)
	fv, err := ExtractFeatures(history, DefaultWindows())
	require.NoError(t, err)
	assert.InDelta(t, 1.5, fv.OverworkRatio, 1e-9)
}
