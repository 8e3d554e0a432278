package keywords

import "github.com/jonathan/resume-matcher/internal/types"

// JobAnalysis is the full extraction result for a job description.
type JobAnalysis struct {
	Keywords      []types.KeywordRecord `json:"keywords"`
	Categories    Categories            `json:"categorized"`
	Requirements  Requirements          `json:"requirements"`
	TotalKeywords int                   `json:"total_keywords"`
}

// AnalyzeJobDescription extracts keywords from a job description and layers
// on categorization and required-vs-preferred classification.
func (e *Extractor) AnalyzeJobDescription(jobText string) JobAnalysis {
	records := e.Extract(jobText)

	return JobAnalysis{
		Keywords:      records,
		Categories:    Categorize(records),
		Requirements:  IdentifyRequirements(jobText, records),
		TotalKeywords: len(records),
	}
}
