package engine

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// DefaultRecommendationCount is how many recommendations a request gets
// unless the caller asks for a different number.
const DefaultRecommendationCount = 3

// factorFlagThreshold marks a risk factor as actionable when it carries at
// least this share of the total score.
const factorFlagThreshold = 0.15

type Recommendation struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Category    string  `json:"category" yaml:"category"`
	Description string  `json:"description" yaml:"description"`
	MinRisk     float64 `json:"-" yaml:"min_risk"`
	MaxRisk     float64 `json:"-" yaml:"max_risk"`
}

type catalog struct {
	Recommendations []Recommendation    `yaml:"recommendations"`
	FactorMap       map[string]string   `yaml:"factor_map"`
	BandDefaults    map[string][]string `yaml:"band_defaults"`
}

// Recommender selects wellbeing recommendations from a static catalog based
// on a score result. It is immutable after construction and safe for
// concurrent use.
type Recommender struct {
	entries   []Recommendation
	byID      map[string]Recommendation
	factorMap map[string]string
	bands     map[string][]string
}

// NewRecommender loads the embedded catalog. It fails only if the catalog
// is malformed or internally inconsistent, which is a build-time defect.
func NewRecommender() (*Recommender, error) {
	var c catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("parse recommendation catalog: %w", err)
	}
	r := &Recommender{
		entries:   c.Recommendations,
		byID:      make(map[string]Recommendation, len(c.Recommendations)),
		factorMap: c.FactorMap,
		bands:     c.BandDefaults,
	}
	for _, entry := range c.Recommendations {
		if _, dup := r.byID[entry.ID]; dup {
			return nil, fmt.Errorf("recommendation catalog: duplicate id %q", entry.ID)
		}
		r.byID[entry.ID] = entry
	}
	for factor, id := range c.FactorMap {
		if _, ok := r.byID[id]; !ok {
			return nil, fmt.Errorf("recommendation catalog: factor %q maps to unknown id %q", factor, id)
		}
	}
	for band, ids := range c.BandDefaults {
		for _, id := range ids {
			if _, ok := r.byID[id]; !ok {
				return nil, fmt.Errorf("recommendation catalog: band %q lists unknown id %q", band, id)
			}
		}
	}
	return r, nil
}

// Recommend returns up to n recommendations for a score result, most
// relevant first. Factor-mapped entries for flagged factors come before
// band defaults; band defaults are filtered by each entry's risk range.
// n <= 0 falls back to DefaultRecommendationCount.
func (r *Recommender) Recommend(score ScoreResult, n int) []Recommendation {
	if n <= 0 {
		n = DefaultRecommendationCount
	}

	var out []Recommendation
	seen := map[string]bool{}
	add := func(id string, checkRange bool) {
		entry, ok := r.byID[id]
		if !ok || seen[id] {
			return
		}
		if checkRange && (score.RiskScore < entry.MinRisk || score.RiskScore > entry.MaxRisk) {
			return
		}
		seen[id] = true
		out = append(out, entry)
	}

	// Factors arrive sorted by contribution, so mapped entries keep that
	// ordering. Flagged factors override the risk range filter.
	for _, factor := range score.Factors {
		if factor.Contribution < factorFlagThreshold {
			continue
		}
		if id, ok := r.factorMap[factor.Name]; ok {
			add(id, false)
		}
	}

	for _, id := range r.bands[bandFor(score.RiskScore)] {
		add(id, true)
	}
	if len(out) < n {
		rest := make([]Recommendation, len(r.entries))
		copy(rest, r.entries)
		sort.SliceStable(rest, func(i, j int) bool { return rest[i].ID < rest[j].ID })
		for _, entry := range rest {
			add(entry.ID, true)
		}
	}

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Catalog returns every catalog entry, for listing endpoints.
func (r *Recommender) Catalog() []Recommendation {
	out := make([]Recommendation, len(r.entries))
	copy(out, r.entries)
	return out
}

func bandFor(score float64) string {
	switch {
	case score < 0.3:
		return "low"
	case score < 0.6:
		return "moderate"
	default:
		return "high"
	}
}
