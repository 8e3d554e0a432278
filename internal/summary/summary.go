// Package summary turns matching results into human-readable guidance:
// importance-tier counts and actionable recommendations.
package summary

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Importance thresholds for bucketing matches and flagging missing keywords.
const (
	HighImportanceThreshold   = 0.8
	MediumImportanceThreshold = 0.5
)

// manyMissingThreshold triggers the generic add-more-skills recommendation.
const manyMissingThreshold = 10

// Build summarizes one matching run. Matches across all tiers are bucketed
// by the larger of their two importance values; recommendations always
// include at least the score-tier message.
func Build(exact, fuzzyMatches, partialMatches []types.Match, missing []types.MissingKeyword, scores types.ScoreSet) types.Summary {
	s := types.Summary{
		MissingKeywordCount: len(missing),
		Recommendations:     Recommendations(missing, scores),
		OverallAssessment:   scoring.Assess(scores.OverallScore),
	}

	for _, matches := range [][]types.Match{exact, fuzzyMatches, partialMatches} {
		for _, m := range matches {
			switch importance := m.MaxImportance(); {
			case importance >= HighImportanceThreshold:
				s.HighImportanceMatches++
			case importance >= MediumImportanceThreshold:
				s.MediumImportanceMatches++
			default:
				s.LowImportanceMatches++
			}
		}
	}

	return s
}

// Recommendations derives guidance from the overall score and the missing
// keywords. The score-tier message is always present; the high-importance
// and many-missing messages appear only when applicable.
func Recommendations(missing []types.MissingKeyword, scores types.ScoreSet) []string {
	recommendations := make([]string, 0, 3)

	switch {
	case scores.OverallScore < 50:
		recommendations = append(recommendations, "Overall match is low. Consider adding more relevant keywords to your resume.")
	case scores.OverallScore < 70:
		recommendations = append(recommendations, "Match is moderate. Focus on adding high-importance missing keywords.")
	default:
		recommendations = append(recommendations, "Good match! Your resume aligns well with the job requirements.")
	}

	if len(missing) > 0 {
		highImportance := 0
		for _, kw := range missing {
			if kw.Importance >= HighImportanceThreshold {
				highImportance++
			}
		}
		if highImportance > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Add %d high-importance keywords to improve your match.", highImportance))
		}

		if len(missing) > manyMissingThreshold {
			recommendations = append(recommendations, "Consider adding more relevant skills and technologies to your resume.")
		}
	}

	return recommendations
}
