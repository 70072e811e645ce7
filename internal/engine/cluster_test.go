package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cohortVectors() map[string]FeatureVector {
	healthy := FeatureVector{
		AvgMoodShort: 8, AvgEnergyShort: 8, AvgStressShort: 2,
		AvgSleepShort: 8, AvgWorkShort: 7, StdStressShort: 0.5,
		SleepDebt: 2, OverworkRatio: 0.9,
	}
	strained := FeatureVector{
		AvgMoodShort: 3, AvgEnergyShort: 3, AvgStressShort: 9,
		AvgSleepShort: 3, AvgWorkShort: 12, StdStressShort: 1.2,
		SleepDebt: 30, OverworkRatio: 1.5,
	}
	return map[string]FeatureVector{
		"u1": healthy, "u2": healthy, "u3": healthy,
		"u4": strained, "u5": strained,
	}
}

func TestClusterProfiles_SeparatesCohorts(t *testing.T) {
	result, err := ClusterProfiles(cohortVectors(), 2)
	require.NoError(t, err)
	require.Len(t, result.Profiles, 2)

	assert.Equal(t, "low-risk", result.Assignments["u1"])
	assert.Equal(t, "low-risk", result.Assignments["u2"])
	assert.Equal(t, "low-risk", result.Assignments["u3"])
	assert.Equal(t, "moderate", result.Assignments["u4"])
	assert.Equal(t, "moderate", result.Assignments["u5"])

	// Profiles come back ordered least to most at-risk, sized accordingly.
	assert.Equal(t, "low-risk", result.Profiles[0].Label)
	assert.Equal(t, 3, result.Profiles[0].Size)
	assert.Equal(t, "moderate", result.Profiles[1].Label)
	assert.Equal(t, 2, result.Profiles[1].Size)
}

func TestClusterProfiles_Deterministic(t *testing.T) {
	first, err := ClusterProfiles(cohortVectors(), 2)
	require.NoError(t, err)
	second, err := ClusterProfiles(cohortVectors(), 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClusterProfiles_CentroidsInRawSpace(t *testing.T) {
	result, err := ClusterProfiles(cohortVectors(), 2)
	require.NoError(t, err)

	lowRisk := result.Profiles[0]
	require.Len(t, lowRisk.Centroid, len(FeatureDims))
	assert.InDelta(t, 8.0, lowRisk.Centroid[0], 1e-9) // avg_mood
	assert.InDelta(t, 2.0, lowRisk.Centroid[2], 1e-9) // avg_stress
}

func TestClusterProfiles_SmallCohortReducesK(t *testing.T) {
	vectors := map[string]FeatureVector{
		"only": {AvgMoodShort: 5, AvgEnergyShort: 5, AvgStressShort: 5, AvgSleepShort: 5, AvgWorkShort: 8},
	}
	result, err := ClusterProfiles(vectors, 4)
	require.NoError(t, err)
	require.Len(t, result.Profiles, 1)
	assert.Equal(t, "low-risk", result.Assignments["only"])
}

func TestClusterProfiles_IdenticalCohortCollapses(t *testing.T) {
	strained := FeatureVector{
		AvgMoodShort: 3, AvgEnergyShort: 3, AvgStressShort: 9,
		AvgSleepShort: 3, AvgWorkShort: 12, SleepDebt: 30, OverworkRatio: 1.5,
	}
	vectors := map[string]FeatureVector{"u1": strained, "u2": strained, "u3": strained}

	result, err := ClusterProfiles(vectors, 2)
	require.NoError(t, err)

	// Duplicate points leave the second seeded cluster empty; it must not
	// surface as a profile or steal a label from the populated one.
	require.Len(t, result.Profiles, 1)
	assert.Equal(t, "low-risk", result.Profiles[0].Label)
	assert.Equal(t, 3, result.Profiles[0].Size)
	assert.InDelta(t, 9.0, result.Profiles[0].Centroid[2], 1e-9) // avg_stress
	for _, id := range []string{"u1", "u2", "u3"} {
		assert.Equal(t, "low-risk", result.Assignments[id])
	}
}

func TestClusterProfiles_InvalidArguments(t *testing.T) {
	_, err := ClusterProfiles(cohortVectors(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ClusterProfiles(cohortVectors(), 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ClusterProfiles(map[string]FeatureVector{}, 2)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
