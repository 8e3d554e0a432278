package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	nonWordChars = regexp.MustCompile(`[^\w\s]`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// NormalizeKeywords canonicalizes raw keyword records into comparable form.
// Records whose text is empty after trimming are dropped; all others map to
// exactly one NormalizedKeyword, in input order. Missing importance, type,
// and frequency take their defaults. Pure transform, no side effects.
func NormalizeKeywords(records []types.KeywordRecord) []types.NormalizedKeyword {
	normalized := make([]types.NormalizedKeyword, 0, len(records))

	for _, record := range records {
		if record.IsEmpty() {
			continue
		}

		normalized = append(normalized, types.NormalizedKeyword{
			Original:   record.Text,
			Normalized: strings.ToLower(strings.TrimSpace(record.Text)),
			Cleaned:    cleanKeyword(record.Text),
			Importance: record.ImportanceOrDefault(),
			Type:       record.TypeOrDefault(),
			Frequency:  record.FrequencyOrDefault(),
		})
	}

	return normalized
}

// cleanKeyword lowercases a keyword and collapses punctuation and runs of
// whitespace into single spaces.
func cleanKeyword(keyword string) string {
	cleaned := nonWordChars.ReplaceAllString(keyword, " ")
	cleaned = multiSpace.ReplaceAllString(cleaned, " ")
	return strings.ToLower(strings.TrimSpace(cleaned))
}
