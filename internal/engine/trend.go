package engine

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendWorsening TrendDirection = "worsening"
)

// DefaultTrendDeadband is the slope magnitude below which a series is
// reported stable, so noise never shows up as a trend.
const DefaultTrendDeadband = 0.02

type TrendOptions struct {
	// Deadband overrides DefaultTrendDeadband when positive.
	Deadband float64
	// HigherIsWorse flips direction classification for series where rising
	// values mean deterioration (risk, stress) rather than improvement
	// (mood, energy).
	HigherIsWorse bool
}

type TrendResult struct {
	Direction TrendDirection `json:"direction"`
	Slope     float64        `json:"slope"`
	Forecast  float64        `json:"forecast"`
}

// AnalyzeTrend fits a least-squares line over (index, value) pairs and
// classifies the direction of the slope against the deadband. The forecast
// is the fitted value one step past the series. Fewer than 3 points degrade
// to a stable direction with the last observation as forecast.
func AnalyzeTrend(series []float64, opts TrendOptions) TrendResult {
	deadband := opts.Deadband
	if deadband <= 0 {
		deadband = DefaultTrendDeadband
	}

	n := len(series)
	if n == 0 {
		return TrendResult{Direction: TrendStable}
	}
	if n < 3 {
		return TrendResult{Direction: TrendStable, Forecast: series[n-1]}
	}

	// Least squares over x = 0..n-1.
	xMean := float64(n-1) / 2
	yMean := mean(series)
	var sxy, sxx float64
	for i, y := range series {
		dx := float64(i) - xMean
		sxy += dx * (y - yMean)
		sxx += dx * dx
	}
	slope := sxy / sxx
	intercept := yMean - slope*xMean
	forecast := intercept + slope*float64(n)

	direction := TrendStable
	if slope > deadband {
		direction = TrendImproving
		if opts.HigherIsWorse {
			direction = TrendWorsening
		}
	} else if slope < -deadband {
		direction = TrendWorsening
		if opts.HigherIsWorse {
			direction = TrendImproving
		}
	}

	return TrendResult{Direction: direction, Slope: slope, Forecast: forecast}
}
