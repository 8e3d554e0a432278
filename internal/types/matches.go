package types

// MatchType identifies the tier that claimed a job keyword.
type MatchType string

// Match tiers in precedence order. A job keyword instance appears in at
// most one tier; anything unclaimed becomes a MissingKeyword.
const (
	MatchExact   MatchType = "exact"
	MatchFuzzy   MatchType = "fuzzy"
	MatchPartial MatchType = "partial"
)

// Match pairs one resume keyword with one job keyword. Created once per
// matching run and never mutated. The normalized fields carry the strings
// used for downstream exclusion logic.
type Match struct {
	ResumeKeyword    string    `json:"resume_keyword"`
	JobKeyword       string    `json:"job_keyword"`
	NormalizedResume string    `json:"normalized_resume"`
	NormalizedJob    string    `json:"normalized_job"`
	MatchType        MatchType `json:"match_type"`
	Confidence       float64   `json:"confidence"` // in [0,1]
	Weight           float64   `json:"weight"`     // constant per tier
	ResumeImportance float64   `json:"resume_importance"`
	JobImportance    float64   `json:"job_importance"`
}

// MaxImportance returns the larger of the two sides' importance, used for
// bucketing matches in the summary.
func (m Match) MaxImportance() float64 {
	if m.ResumeImportance > m.JobImportance {
		return m.ResumeImportance
	}
	return m.JobImportance
}

// MissingKeyword is a job keyword with no match in any tier.
type MissingKeyword struct {
	Keyword    string      `json:"keyword"`
	Normalized string      `json:"normalized"`
	Importance float64     `json:"importance"`
	Type       KeywordType `json:"type"`
}

// ScoreSet holds the aggregated scores for one matching run. Computed fresh
// each run from the match lists and list lengths; no persisted state.
type ScoreSet struct {
	ExactScore         float64 `json:"exact_score"`
	FuzzyScore         float64 `json:"fuzzy_score"`
	PartialScore       float64 `json:"partial_score"`
	TotalWeightedScore float64 `json:"total_weighted_score"`
	MatchPercentage    float64 `json:"match_percentage"`
	CoveragePercentage float64 `json:"coverage_percentage"`
	ResumeUtilization  float64 `json:"resume_utilization"`
	OverallScore       float64 `json:"overall_score"`
	TotalMatches       int     `json:"total_matches"`
	ExactCount         int     `json:"exact_matches_count"`
	FuzzyCount         int     `json:"fuzzy_matches_count"`
	PartialCount       int     `json:"partial_matches_count"`
}
