package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateStatistics_Empty(t *testing.T) {
	_, err := AggregateStatistics(nil)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestAggregateStatistics_Summary(t *testing.T) {
	rows := []StatRecord{
		{ID: "a", Group: "eng", Mood: 3, Energy: 4, Stress: 9, Sleep: 4, WorkHours: 11},
		{ID: "a", Group: "eng", Mood: 4, Energy: 5, Stress: 8, Sleep: 5, WorkHours: 10},
		{ID: "b", Group: "eng", Mood: 7, Energy: 7, Stress: 3, Sleep: 7, WorkHours: 8},
		{ID: "c", Group: "sales", Mood: 8, Energy: 8, Stress: 2, Sleep: 8, WorkHours: 7},
	}

	result, err := AggregateStatistics(rows)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Summary.TotalRecords)
	assert.Equal(t, 3, result.Summary.UniqueIDs)
	assert.InDelta(t, 50.0, result.Summary.HighStressPct, 1e-9)
	assert.InDelta(t, 50.0, result.Summary.LowMoodPct, 1e-9)
	assert.InDelta(t, 50.0, result.Summary.OvertimePct, 1e-9)

	require.Len(t, result.Groups, 2)
	assert.Equal(t, "eng", result.Groups[0].Group)
	assert.Equal(t, 3, result.Groups[0].Count)
	assert.Equal(t, "sales", result.Groups[1].Group)
	// Single-record groups report no aggregates.
	assert.Nil(t, result.Groups[1].Metrics)
}

func TestAggregateStatistics_OvertimeStressTest(t *testing.T) {
	rows := []StatRecord{
		{ID: "a", Group: "eng", Stress: 9, WorkHours: 11, Mood: 5, Energy: 5, Sleep: 5},
		{ID: "b", Group: "eng", Stress: 9, WorkHours: 12, Mood: 5, Energy: 5, Sleep: 5},
		{ID: "c", Group: "eng", Stress: 8, WorkHours: 10, Mood: 5, Energy: 5, Sleep: 5},
		{ID: "d", Group: "eng", Stress: 3, WorkHours: 8, Mood: 5, Energy: 5, Sleep: 5},
		{ID: "e", Group: "eng", Stress: 3, WorkHours: 7, Mood: 5, Energy: 5, Sleep: 5},
		{ID: "f", Group: "eng", Stress: 4, WorkHours: 8, Mood: 5, Energy: 5, Sleep: 5},
	}

	result, err := AggregateStatistics(rows)
	require.NoError(t, err)

	test := result.Summary.OvertimeTest
	require.NotNil(t, test)
	assert.Equal(t, 3, test.NOvertime)
	assert.Equal(t, 3, test.NNormal)
	assert.Greater(t, test.TStat, 0.0)
	assert.True(t, test.Significant)
	assert.InDelta(t, 8.667, test.MeanOvertime, 0.001)
}

func TestAggregateStatistics_IQROutliers(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 100}
	rows := make([]StatRecord, len(values))
	for i, v := range values {
		rows[i] = StatRecord{ID: "u", Group: "eng", WorkHours: v, Mood: 5, Energy: 5, Stress: 5, Sleep: 5}
	}

	result, err := AggregateStatistics(rows)
	require.NoError(t, err)
	// Q1=2.25, Q3=4, fences [-0.375, 6.625]: only the 100 trips the rule.
	assert.Equal(t, []int{9}, result.OutlierFlags[MetricWorkHours])
	assert.Empty(t, result.OutlierFlags[MetricMood])
}

func TestAggregateStatistics_Correlations(t *testing.T) {
	rows := []StatRecord{
		{ID: "a", Group: "eng", Mood: 9, Stress: 1, Energy: 6, Sleep: 7, WorkHours: 8},
		{ID: "b", Group: "eng", Mood: 7, Stress: 3, Energy: 5, Sleep: 6, WorkHours: 9},
		{ID: "c", Group: "eng", Mood: 5, Stress: 5, Energy: 7, Sleep: 5, WorkHours: 10},
		{ID: "d", Group: "eng", Mood: 3, Stress: 7, Energy: 4, Sleep: 8, WorkHours: 11},
	}

	result, err := AggregateStatistics(rows)
	require.NoError(t, err)

	assert.InDelta(t, -1.0, result.Correlations[MetricMood][MetricStress], 1e-9)
	assert.InDelta(t, 1.0, result.Correlations[MetricStress][MetricStress], 1e-9)
	// No scored records: the risk row is absent, not zero.
	_, ok := result.Correlations[MetricRisk]
	assert.False(t, ok)
}

func TestAggregateStatistics_GroupMetrics(t *testing.T) {
	rows := []StatRecord{
		{ID: "a", Group: "eng", Mood: 4, Energy: 4, Stress: 6, Sleep: 5, WorkHours: 9},
		{ID: "b", Group: "eng", Mood: 6, Energy: 6, Stress: 8, Sleep: 7, WorkHours: 11},
	}

	result, err := AggregateStatistics(rows)
	require.NoError(t, err)

	eng := result.Groups[0]
	require.NotNil(t, eng.Metrics)
	assert.InDelta(t, 5.0, eng.Metrics[MetricMood].Mean, 1e-9)
	assert.InDelta(t, 7.0, eng.Metrics[MetricStress].Median, 1e-9)
	// Risk is nil on both rows, so the metric is omitted.
	_, ok := eng.Metrics[MetricRisk]
	assert.False(t, ok)

	assert.Equal(t, "all", result.Overall.Group)
	assert.Equal(t, 2, result.Overall.Count)
}
