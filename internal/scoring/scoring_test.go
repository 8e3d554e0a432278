package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func matchWith(weight, confidence float64) types.Match {
	return types.Match{Weight: weight, Confidence: confidence}
}

func TestCompute_PerfectMatch(t *testing.T) {
	exact := []types.Match{
		matchWith(1.0, 1.0),
		matchWith(1.0, 1.0),
	}

	scores := Compute(exact, nil, nil, 2, 2)

	assert.Equal(t, 2.0, scores.ExactScore)
	assert.Equal(t, 2.0, scores.TotalWeightedScore)
	assert.Equal(t, 100.0, scores.OverallScore)
	assert.Equal(t, 100.0, scores.MatchPercentage)
	assert.Equal(t, 100.0, scores.CoveragePercentage)
	assert.Equal(t, 100.0, scores.ResumeUtilization)
}

func TestCompute_MixedTiers(t *testing.T) {
	exact := []types.Match{matchWith(1.0, 1.0)}
	fuzzyMatches := []types.Match{matchWith(0.8, 0.9)}
	partialMatches := []types.Match{matchWith(0.6, 0.6)}

	scores := Compute(exact, fuzzyMatches, partialMatches, 5, 4)

	assert.InDelta(t, 1.0, scores.ExactScore, 0.0001)
	assert.InDelta(t, 0.72, scores.FuzzyScore, 0.0001)
	assert.InDelta(t, 0.36, scores.PartialScore, 0.0001)
	assert.InDelta(t, 2.08, scores.TotalWeightedScore, 0.0001)
	assert.Equal(t, 3, scores.TotalMatches)
	assert.InDelta(t, 75.0, scores.MatchPercentage, 0.0001)
	assert.InDelta(t, 52.0, scores.OverallScore, 0.0001)
	assert.InDelta(t, 60.0, scores.ResumeUtilization, 0.0001)
}

func TestCompute_ZeroGuards(t *testing.T) {
	scores := Compute(nil, nil, nil, 0, 0)

	assert.Equal(t, 0.0, scores.OverallScore)
	assert.Equal(t, 0.0, scores.MatchPercentage)
	assert.Equal(t, 0.0, scores.CoveragePercentage)
	assert.Equal(t, 0.0, scores.ResumeUtilization)
	assert.Equal(t, 0, scores.TotalMatches)
}

func TestCompute_ScoresStayWithinBounds(t *testing.T) {
	// Every job keyword fuzzy-matched at high confidence still cannot push
	// the overall score past 100.
	fuzzyMatches := []types.Match{
		matchWith(0.8, 0.95),
		matchWith(0.8, 0.95),
	}

	scores := Compute(nil, fuzzyMatches, nil, 2, 2)

	assert.GreaterOrEqual(t, scores.OverallScore, 0.0)
	assert.LessOrEqual(t, scores.OverallScore, 100.0)
	assert.InDelta(t, 76.0, scores.OverallScore, 0.0001)
}

func TestAssess(t *testing.T) {
	assert.Equal(t, "Excellent Match", Assess(95))
	assert.Equal(t, "Excellent Match", Assess(90))
	assert.Equal(t, "Very Good Match", Assess(85))
	assert.Equal(t, "Good Match", Assess(70))
	assert.Equal(t, "Fair Match", Assess(65))
	assert.Equal(t, "Poor Match", Assess(50))
	assert.Equal(t, "Very Poor Match", Assess(49.9))
	assert.Equal(t, "Very Poor Match", Assess(0))
}
