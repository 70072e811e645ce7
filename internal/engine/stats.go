package engine

import (
	"fmt"
	"math"
	"sort"
)

// Metric names used in aggregate statistics and the correlation matrix.
const (
	MetricMood      = "mood_score"
	MetricEnergy    = "energy_score"
	MetricStress    = "stress_score"
	MetricSleep     = "sleep_quality"
	MetricWorkHours = "work_hours"
	MetricRisk      = "risk_score"
)

var StatMetrics = []string{MetricMood, MetricEnergy, MetricStress, MetricSleep, MetricWorkHours, MetricRisk}

// Thresholds for the organizational risk indicators, from the original
// reporting rules: stress of 8+ counts as high stress, mood of 4 or less as
// low mood, more than 9 worked hours as overtime.
const (
	highStressCutoff = 8.0
	lowMoodCutoff    = 4.0
	overtimeCutoff   = 9.0
)

// iqrFactor is the standard 1.5 multiplier of the IQR outlier rule.
const iqrFactor = 1.5

// StatRecord is one anonymized observation for organization-wide analysis.
// ID is an opaque (already anonymized) user identifier; Group is the
// grouping key, typically a department. Risk is nil for unscored records.
type StatRecord struct {
	ID        string
	Group     string
	Mood      float64
	Energy    float64
	Stress    float64
	Sleep     float64
	WorkHours float64
	Risk      *float64
}

type MetricSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
}

type GroupStats struct {
	Group string `json:"group"`
	Count int    `json:"count"`
	// Metrics is nil for groups with fewer than two records; aggregates over
	// a single observation carry no information.
	Metrics map[string]MetricSummary `json:"metrics,omitempty"`
}

// TTestResult compares stress between overtime and regular-hours records
// with Welch's t-statistic. |T| >= 2 is treated as significant, roughly the
// 95% level; no exact p-value is computed for this heuristic report.
type TTestResult struct {
	TStat        float64 `json:"t_stat"`
	MeanOvertime float64 `json:"mean_overtime"`
	MeanNormal   float64 `json:"mean_normal"`
	NOvertime    int     `json:"n_overtime"`
	NNormal      int     `json:"n_normal"`
	Significant  bool    `json:"significant"`
}

type OrgSummary struct {
	TotalRecords  int          `json:"total_records"`
	UniqueIDs     int          `json:"unique_ids"`
	HighStressPct float64      `json:"high_stress_pct"`
	LowMoodPct    float64      `json:"low_mood_pct"`
	OvertimePct   float64      `json:"overtime_pct"`
	OvertimeTest  *TTestResult `json:"overtime_stress_test,omitempty"`
}

type StatsResult struct {
	Summary OrgSummary   `json:"summary"`
	Overall GroupStats   `json:"overall"`
	Groups  []GroupStats `json:"groups"`
	// Correlations holds the Pearson matrix; pairs whose coefficient is
	// undefined (zero variance) are omitted rather than reported as a fault.
	Correlations map[string]map[string]float64 `json:"correlations"`
	// OutlierFlags maps each metric to the indices of input rows flagged by
	// the IQR rule, evaluated per metric per group.
	OutlierFlags map[string][]int `json:"outlier_flags"`
}

// AggregateStatistics computes organization-wide aggregates, department
// comparisons, the metric correlation matrix and IQR outlier flags over a
// multi-user record set.
func AggregateStatistics(rows []StatRecord) (StatsResult, error) {
	if len(rows) == 0 {
		return StatsResult{}, fmt.Errorf("%w: no records", ErrInsufficientData)
	}

	result := StatsResult{
		Summary:      summarize(rows),
		Overall:      groupStatsFor("all", rows, indicesOf(rows)),
		Correlations: correlationMatrix(rows),
		OutlierFlags: map[string][]int{},
	}

	byGroup := map[string][]int{}
	for i, row := range rows {
		byGroup[row.Group] = append(byGroup[row.Group], i)
	}
	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, g := range groups {
		idx := byGroup[g]
		result.Groups = append(result.Groups, groupStatsFor(g, rows, idx))
		flagOutliers(rows, idx, result.OutlierFlags)
	}
	for _, metric := range StatMetrics {
		sort.Ints(result.OutlierFlags[metric])
	}

	return result, nil
}

func summarize(rows []StatRecord) OrgSummary {
	unique := map[string]struct{}{}
	var highStress, lowMood, overtime int
	var overtimeStress, normalStress []float64
	for _, row := range rows {
		unique[row.ID] = struct{}{}
		if row.Stress >= highStressCutoff {
			highStress++
		}
		if row.Mood <= lowMoodCutoff {
			lowMood++
		}
		if row.WorkHours > overtimeCutoff {
			overtime++
			overtimeStress = append(overtimeStress, row.Stress)
		} else {
			normalStress = append(normalStress, row.Stress)
		}
	}
	n := float64(len(rows))
	summary := OrgSummary{
		TotalRecords:  len(rows),
		UniqueIDs:     len(unique),
		HighStressPct: float64(highStress) / n * 100,
		LowMoodPct:    float64(lowMood) / n * 100,
		OvertimePct:   float64(overtime) / n * 100,
	}
	summary.OvertimeTest = welchT(overtimeStress, normalStress)
	return summary
}

// welchT returns nil when either sample is too small or both variances
// vanish, an insufficient-data condition rather than a numeric fault.
func welchT(a, b []float64) *TTestResult {
	if len(a) < 2 || len(b) < 2 {
		return nil
	}
	ma, mb := mean(a), mean(b)
	va := stddev(a) * stddev(a)
	vb := stddev(b) * stddev(b)
	se := math.Sqrt(va/float64(len(a)) + vb/float64(len(b)))
	if se == 0 {
		return nil
	}
	t := (ma - mb) / se
	return &TTestResult{
		TStat:        t,
		MeanOvertime: ma,
		MeanNormal:   mb,
		NOvertime:    len(a),
		NNormal:      len(b),
		Significant:  math.Abs(t) >= 2,
	}
}

func indicesOf(rows []StatRecord) []int {
	idx := make([]int, len(rows))
	for i := range rows {
		idx[i] = i
	}
	return idx
}

func groupStatsFor(group string, rows []StatRecord, idx []int) GroupStats {
	gs := GroupStats{Group: group, Count: len(idx)}
	if len(idx) < 2 {
		return gs
	}
	gs.Metrics = map[string]MetricSummary{}
	for _, metric := range StatMetrics {
		values := metricValues(rows, idx, metric)
		if len(values) < 2 {
			continue
		}
		gs.Metrics[metric] = MetricSummary{Mean: mean(values), Median: median(values), Std: stddev(values)}
	}
	return gs
}

func flagOutliers(rows []StatRecord, idx []int, flags map[string][]int) {
	for _, metric := range StatMetrics {
		var values []float64
		var present []int
		for _, i := range idx {
			if v, ok := metricValue(rows[i], metric); ok {
				values = append(values, v)
				present = append(present, i)
			}
		}
		if len(values) < 4 {
			continue
		}
		q1 := percentile(values, 25)
		q3 := percentile(values, 75)
		iqr := q3 - q1
		lower := q1 - iqrFactor*iqr
		upper := q3 + iqrFactor*iqr
		for j, v := range values {
			if v < lower || v > upper {
				flags[metric] = append(flags[metric], present[j])
			}
		}
	}
}

func correlationMatrix(rows []StatRecord) map[string]map[string]float64 {
	matrix := map[string]map[string]float64{}
	for _, a := range StatMetrics {
		for _, b := range StatMetrics {
			var xs, ys []float64
			for _, row := range rows {
				va, oka := metricValue(row, a)
				vb, okb := metricValue(row, b)
				if oka && okb {
					xs = append(xs, va)
					ys = append(ys, vb)
				}
			}
			if r, ok := pearson(xs, ys); ok {
				if matrix[a] == nil {
					matrix[a] = map[string]float64{}
				}
				matrix[a][b] = r
			}
		}
	}
	return matrix
}

func metricValues(rows []StatRecord, idx []int, metric string) []float64 {
	var values []float64
	for _, i := range idx {
		if v, ok := metricValue(rows[i], metric); ok {
			values = append(values, v)
		}
	}
	return values
}

func metricValue(row StatRecord, metric string) (float64, bool) {
	switch metric {
	case MetricMood:
		return row.Mood, true
	case MetricEnergy:
		return row.Energy, true
	case MetricStress:
		return row.Stress, true
	case MetricSleep:
		return row.Sleep, true
	case MetricWorkHours:
		return row.WorkHours, true
	case MetricRisk:
		if row.Risk == nil {
			return 0, false
		}
		return *row.Risk, true
	default:
		return 0, false
	}
}
