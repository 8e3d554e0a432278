package types

// Summary condenses a matching run for human consumption: importance-tier
// counts across all matched pairs, the missing-keyword count, generated
// recommendations, and the categorical assessment of the overall score.
type Summary struct {
	HighImportanceMatches   int      `json:"high_importance_matches"`
	MediumImportanceMatches int      `json:"medium_importance_matches"`
	LowImportanceMatches    int      `json:"low_importance_matches"`
	MissingKeywordCount     int      `json:"missing_keywords_count"`
	Recommendations         []string `json:"recommendations"`
	OverallAssessment       string   `json:"overall_assessment"`
}

// MatchReport is the result bundle of one matching run: the four outcome
// lists, the aggregated scores, and the summary.
type MatchReport struct {
	ExactMatches    []Match          `json:"exact_matches"`
	FuzzyMatches    []Match          `json:"fuzzy_matches"`
	PartialMatches  []Match          `json:"partial_matches"`
	MissingKeywords []MissingKeyword `json:"missing_keywords"`
	Scores          ScoreSet         `json:"scores"`
	Summary         Summary          `json:"summary"`

	TotalResumeKeywords int     `json:"total_resume_keywords"`
	TotalJobKeywords    int     `json:"total_job_keywords"`
	MatchPercentage     float64 `json:"match_percentage"` // mirrors Scores.OverallScore
}
