// Package scoring aggregates match tiers into percentage scores and a
// categorical assessment of resume/job fit.
package scoring

import "github.com/jonathan/resume-matcher/internal/types"

// maxTierWeight is the weight of the strongest tier (exact). The overall
// score normalizes the total weighted score against a hypothetical run
// where every job keyword matched exactly.
const maxTierWeight = 1.0

// Compute derives the full score set for one matching run. Percentages
// guard against empty lists: zero job or resume keywords yield 0.0 rather
// than a division error. OverallScore stays within [0,100] because each
// match's weight is at most maxTierWeight and the match count is at most
// the job keyword count.
func Compute(exact, fuzzyMatches, partialMatches []types.Match, totalResumeKeywords, totalJobKeywords int) types.ScoreSet {
	scores := types.ScoreSet{
		ExactScore:   weightedSum(exact),
		FuzzyScore:   weightedSum(fuzzyMatches),
		PartialScore: weightedSum(partialMatches),
		ExactCount:   len(exact),
		FuzzyCount:   len(fuzzyMatches),
		PartialCount: len(partialMatches),
	}
	scores.TotalWeightedScore = scores.ExactScore + scores.FuzzyScore + scores.PartialScore
	scores.TotalMatches = scores.ExactCount + scores.FuzzyCount + scores.PartialCount

	if totalJobKeywords > 0 {
		scores.MatchPercentage = float64(scores.TotalMatches) / float64(totalJobKeywords) * 100
		scores.CoveragePercentage = scores.MatchPercentage
		scores.OverallScore = scores.TotalWeightedScore / (float64(totalJobKeywords) * maxTierWeight) * 100
	}

	if totalResumeKeywords > 0 {
		scores.ResumeUtilization = float64(scores.TotalMatches) / float64(totalResumeKeywords) * 100
	}

	return scores
}

// weightedSum totals weight x confidence over a match list.
func weightedSum(matches []types.Match) float64 {
	total := 0.0
	for _, m := range matches {
		total += m.Weight * m.Confidence
	}
	return total
}

// Assess maps an overall score to its quality label. Thresholds are
// inclusive at the lower bound of each band.
func Assess(overallScore float64) string {
	switch {
	case overallScore >= 90:
		return "Excellent Match"
	case overallScore >= 80:
		return "Very Good Match"
	case overallScore >= 70:
		return "Good Match"
	case overallScore >= 60:
		return "Fair Match"
	case overallScore >= 50:
		return "Poor Match"
	default:
		return "Very Poor Match"
	}
}
