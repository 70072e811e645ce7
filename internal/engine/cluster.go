package engine

import (
	"fmt"
	"sort"
)

// ProfileLabels orders the risk profile names from least to most at-risk.
// Labels are assigned by ranked centroid risk, never by cluster index, so
// the same cohort always gets the same names.
var ProfileLabels = []string{"low-risk", "moderate", "high-risk", "critical"}

// DefaultProfileCount is the default number of risk profiles.
const DefaultProfileCount = 4

const maxKMeansIterations = 25

type Profile struct {
	Label string `json:"label"`
	// Centroid holds the profile's signature in raw feature space, indexed
	// like FeatureDims.
	Centroid []float64 `json:"centroid"`
	Size     int       `json:"size"`
}

type ClusterResult struct {
	// Assignments maps each input id to its profile label.
	Assignments map[string]string `json:"assignments"`
	Profiles    []Profile         `json:"profiles"`
}

// ClusterProfiles partitions one feature vector per user into k named risk
// profiles. The partition is deterministic: vectors are ordered by id,
// standardized per dimension, and centroids are seeded with farthest-point
// initialization from the first vector. Cohorts smaller than k reduce k to
// the cohort size.
func ClusterProfiles(vectors map[string]FeatureVector, k int) (ClusterResult, error) {
	if k <= 0 {
		return ClusterResult{}, fmt.Errorf("%w: cluster count must be positive", ErrInvalidInput)
	}
	if len(vectors) == 0 {
		return ClusterResult{}, fmt.Errorf("%w: empty cohort", ErrInsufficientData)
	}
	if k > len(ProfileLabels) {
		return ClusterResult{}, fmt.Errorf("%w: at most %d profiles supported", ErrInvalidInput, len(ProfileLabels))
	}
	if k > len(vectors) {
		k = len(vectors)
	}

	ids := make([]string, 0, len(vectors))
	for id := range vectors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raw := make([][]float64, len(ids))
	for i, id := range ids {
		raw[i] = vectors[id].Vector()
	}
	points := standardize(raw)

	assign := kmeans(points, k)

	// Rebuild centroids in raw feature space so profile signatures stay
	// interpretable, then rank them by composite risk.
	dims := len(FeatureDims)
	sums := make([][]float64, k)
	counts := make([]int, k)
	for i := range sums {
		sums[i] = make([]float64, dims)
	}
	for i, c := range assign {
		counts[c]++
		for d := 0; d < dims; d++ {
			sums[c][d] += raw[i][d]
		}
	}

	type ranked struct {
		cluster  int
		risk     float64
		centroid []float64
	}
	rankedClusters := make([]ranked, 0, k)
	for c := 0; c < k; c++ {
		// Seeding over duplicate points can leave a cluster empty; it has
		// no centroid and must not take part in the ranking.
		if counts[c] == 0 {
			continue
		}
		centroid := make([]float64, dims)
		for d := 0; d < dims; d++ {
			centroid[d] = sums[c][d] / float64(counts[c])
		}
		rankedClusters = append(rankedClusters, ranked{cluster: c, risk: centroidRisk(centroid), centroid: centroid})
	}
	sort.SliceStable(rankedClusters, func(i, j int) bool {
		return rankedClusters[i].risk < rankedClusters[j].risk
	})

	labelByCluster := make(map[int]string, len(rankedClusters))
	profiles := make([]Profile, 0, len(rankedClusters))
	for rank, rc := range rankedClusters {
		label := ProfileLabels[rank]
		labelByCluster[rc.cluster] = label
		profiles = append(profiles, Profile{Label: label, Centroid: rc.centroid, Size: counts[rc.cluster]})
	}

	assignments := make(map[string]string, len(ids))
	for i, id := range ids {
		assignments[id] = labelByCluster[assign[i]]
	}

	return ClusterResult{Assignments: assignments, Profiles: profiles}, nil
}

// centroidRisk scores a raw-space centroid with the composite the scorer
// uses, so label ordering matches scored risk.
func centroidRisk(centroid []float64) float64 {
	// Indexes follow FeatureDims.
	avgMood := centroid[0]
	avgEnergy := centroid[1]
	avgStress := centroid[2]
	avgSleep := centroid[3]
	return (10-avgMood)*0.3 + (10-avgEnergy)*0.2 + avgStress*0.3 + (10-avgSleep)*0.2
}

// standardize z-scores each dimension; zero-variance dimensions collapse to
// zero so they cannot dominate distances.
func standardize(points [][]float64) [][]float64 {
	if len(points) == 0 {
		return nil
	}
	dims := len(points[0])
	out := make([][]float64, len(points))
	for i := range out {
		out[i] = make([]float64, dims)
	}
	col := make([]float64, len(points))
	for d := 0; d < dims; d++ {
		for i := range points {
			col[i] = points[i][d]
		}
		m := mean(col)
		sd := stddev(col)
		for i := range points {
			if sd > 0 {
				out[i][d] = (points[i][d] - m) / sd
			}
		}
	}
	return out
}

// kmeans runs a deterministic centroid-based partition: farthest-point
// initialization seeded with the first point, then bounded Lloyd iterations.
// Returns the cluster index per point.
func kmeans(points [][]float64, k int) []int {
	n := len(points)
	if k > n {
		k = n
	}
	if k <= 1 {
		return make([]int, n)
	}

	centroids := make([][]float64, 0, k)
	centroids = append(centroids, copyPoint(points[0]))
	for len(centroids) < k {
		bestIdx := 0
		bestDist := -1.0
		for i := range points {
			d := nearestDistance(points[i], centroids)
			if d > bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		centroids = append(centroids, copyPoint(points[bestIdx]))
	}

	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}

	dims := len(points[0])
	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false
		for i, p := range points {
			best := 0
			bestDist := euclidean(p, centroids[0])
			for c := 1; c < k; c++ {
				if d := euclidean(p, centroids[c]); d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, c := range assign {
			counts[c]++
			for d := 0; d < dims; d++ {
				sums[c][d] += points[i][d]
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			for d := 0; d < dims; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return assign
}

func copyPoint(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}

func nearestDistance(p []float64, centroids [][]float64) float64 {
	best := -1.0
	for _, c := range centroids {
		d := euclidean(p, c)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
