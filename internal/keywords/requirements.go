package keywords

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Requirements splits job-description keywords into hard requirements and
// nice-to-haves.
type Requirements struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// contextWindow is how many characters around a keyword are scanned for
// requirement or preference indicators.
const contextWindow = 100

var requirementIndicators = []string{
	"required", "requirement", "must have", "essential",
	"minimum", "at least", "necessary", "mandatory",
}

var preferredIndicators = []string{
	"preferred", "nice to have", "bonus", "plus",
	"would be great", "ideal", "optional",
}

// requiredImportanceFloor: keywords above this importance default to
// required when their context is silent.
const requiredImportanceFloor = 0.7

// IdentifyRequirements classifies each keyword as required or preferred by
// scanning the text surrounding its first occurrence for indicator words.
// Keywords with no indicator nearby fall back on importance. Output lists
// are deduplicated and sorted for stable results.
func IdentifyRequirements(jobText string, records []types.KeywordRecord) Requirements {
	requiredSet := map[string]struct{}{}
	preferredSet := map[string]struct{}{}

	for _, record := range records {
		context := strings.ToLower(keywordContext(jobText, record.Text))

		switch {
		case containsAny(context, requirementIndicators):
			requiredSet[record.Text] = struct{}{}
		case containsAny(context, preferredIndicators):
			preferredSet[record.Text] = struct{}{}
		case record.ImportanceOrDefault() > requiredImportanceFloor:
			requiredSet[record.Text] = struct{}{}
		default:
			preferredSet[record.Text] = struct{}{}
		}
	}

	return Requirements{
		Required:  sortedKeys(requiredSet),
		Preferred: sortedKeys(preferredSet),
	}
}

// keywordContext returns up to contextWindow characters on each side of the
// keyword's first case-insensitive occurrence, or "" when absent.
func keywordContext(text, keyword string) string {
	index := strings.Index(strings.ToLower(text), strings.ToLower(keyword))
	if index == -1 {
		return ""
	}

	start := index - contextWindow
	if start < 0 {
		start = 0
	}
	end := index + len(keyword) + contextWindow
	if end > len(text) {
		end = len(text)
	}

	return text[start:end]
}

func containsAny(text string, indicators []string) bool {
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
