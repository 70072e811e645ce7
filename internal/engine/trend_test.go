package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTrend_ShortSeries(t *testing.T) {
	result := AnalyzeTrend(nil, TrendOptions{})
	assert.Equal(t, TrendStable, result.Direction)
	assert.Zero(t, result.Slope)

	// Two points would fit a line trivially; stay stable and forecast the
	// last observation instead.
	result = AnalyzeTrend([]float64{3, 9}, TrendOptions{})
	assert.Equal(t, TrendStable, result.Direction)
	assert.InDelta(t, 9.0, result.Forecast, 1e-9)
}

func TestAnalyzeTrend_RisingMood(t *testing.T) {
	result := AnalyzeTrend([]float64{4, 5, 6, 7, 8}, TrendOptions{})
	assert.Equal(t, TrendImproving, result.Direction)
	assert.InDelta(t, 1.0, result.Slope, 1e-9)
	assert.InDelta(t, 9.0, result.Forecast, 1e-9)
}

func TestAnalyzeTrend_RisingStressIsWorsening(t *testing.T) {
	result := AnalyzeTrend([]float64{4, 5, 6, 7, 8}, TrendOptions{HigherIsWorse: true})
	assert.Equal(t, TrendWorsening, result.Direction)
}

func TestAnalyzeTrend_Deadband(t *testing.T) {
	// Slope well below the default deadband reads as noise.
	result := AnalyzeTrend([]float64{5.00, 5.01, 5.00, 5.02, 5.01}, TrendOptions{})
	assert.Equal(t, TrendStable, result.Direction)

	// A tighter deadband surfaces the same drift.
	result = AnalyzeTrend([]float64{5.00, 5.01, 5.00, 5.02, 5.01}, TrendOptions{Deadband: 0.001})
	assert.Equal(t, TrendImproving, result.Direction)
}

func TestAnalyzeTrend_FallingSeries(t *testing.T) {
	result := AnalyzeTrend([]float64{8, 7, 6, 5}, TrendOptions{})
	assert.Equal(t, TrendWorsening, result.Direction)
	assert.InDelta(t, 4.0, result.Forecast, 1e-9)

	result = AnalyzeTrend([]float64{8, 7, 6, 5}, TrendOptions{HigherIsWorse: true})
	assert.Equal(t, TrendImproving, result.Direction)
}
