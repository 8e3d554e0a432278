// Package keywords extracts weighted keywords from resume and job
// description text using deterministic heuristics: capitalized-run and
// known-term phrase detection, stop-word filtering, and frequency-based
// importance boosts.
package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Keyword length bounds. Candidates outside the range are discarded.
const (
	MinKeywordLength = 3
	MaxKeywordLength = 50
)

// DefaultMaxKeywords caps extraction output when the caller does not.
const DefaultMaxKeywords = 100

// Base importance by candidate type, before the frequency boost.
const (
	entityImportance     = 0.9
	nounPhraseImportance = 0.8
	tokenImportance      = 0.7
	basicImportance      = 0.5
)

// maxFrequencyBoost caps the per-occurrence importance bonus.
const maxFrequencyBoost = 0.3

var (
	specialChars = regexp.MustCompile(`[^\w\s\-\.\,\;\:\!\?\(\)\[\]\{\}]`)
	spaceRuns    = regexp.MustCompile(`\s+`)
	wordPattern  = regexp.MustCompile(`[\w][\w\-\.]*`)
)

// candidate is one raw extraction hit before frequency weighting and dedup.
type candidate struct {
	text       string
	normalized string
	kind       types.KeywordType
	importance float64
}

// Extractor turns free text into ranked KeywordRecords.
type Extractor struct {
	// MaxKeywords bounds the result length; zero or negative means
	// DefaultMaxKeywords.
	MaxKeywords int

	// extraTerms extends the known-term vocabulary, already preprocessed.
	// Populated via UseIndustryTerms and AddCustomTerms.
	extraTerms []string
}

// NewExtractor returns an Extractor with the given result cap.
func NewExtractor(maxKeywords int) *Extractor {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	return &Extractor{MaxKeywords: maxKeywords}
}

// Extract pulls ranked keywords out of text. Candidates come from three
// passes over the raw text: capitalized runs (entities and noun phrases),
// known technical terms, and plain token filtering. Results are deduplicated
// by normalized text keeping the first occurrence, weighted by base
// importance plus a capped frequency boost, and sorted by importance
// descending. Empty text yields an empty list.
func (e *Extractor) Extract(text string) []types.KeywordRecord {
	if strings.TrimSpace(text) == "" {
		return []types.KeywordRecord{}
	}

	cleaned := preprocess(text)

	candidates := extractCapitalizedRuns(text)
	candidates = append(candidates, extractKnownTerms(cleaned, e.extraTerms)...)
	candidates = append(candidates, extractTokens(cleaned)...)

	return e.rank(candidates)
}

// preprocess lowercases text, strips unusual characters, and collapses
// whitespace runs.
func preprocess(text string) string {
	cleaned := strings.ToLower(text)
	cleaned = specialChars.ReplaceAllString(cleaned, " ")
	cleaned = spaceRuns.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// extractCapitalizedRuns scans the ORIGINAL text for consecutive capitalized
// words. Runs of two or more become entity candidates; a lone capitalized
// word that does not open its sentence becomes a noun-phrase candidate.
func extractCapitalizedRuns(text string) []candidate {
	candidates := []candidate{}

	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		run := []string{}
		runStart := 0
		for i, word := range words {
			trimmed := strings.Trim(word, ".,;:!?()[]{}\"'")
			if isCapitalizedWord(trimmed) {
				if len(run) == 0 {
					runStart = i
				}
				run = append(run, trimmed)
				if i < len(words)-1 {
					continue
				}
			}
			if len(run) >= 2 {
				phrase := strings.Join(run, " ")
				candidates = append(candidates, newCandidate(phrase, types.KeywordEntity, entityImportance))
			} else if len(run) == 1 && runStart > 0 {
				candidates = append(candidates, newCandidate(run[0], types.KeywordNounPhrase, nounPhraseImportance))
			}
			run = run[:0]
		}
	}

	return candidates
}

func isCapitalizedWord(word string) bool {
	if len(word) < MinKeywordLength {
		return false
	}
	runes := []rune(word)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	return !isStopWord(strings.ToLower(word))
}

// extractKnownTerms finds technology and skill terms from the category
// vocabularies, plus any extra terms, in the preprocessed text. Multi-word
// terms become noun-phrase candidates, single words become token candidates.
func extractKnownTerms(cleaned string, extraTerms []string) []candidate {
	candidates := []candidate{}
	padded := " " + cleaned + " "

	for _, term := range append(knownTerms(), extraTerms...) {
		if !strings.Contains(padded, " "+term+" ") {
			continue
		}
		if strings.Contains(term, " ") {
			candidates = append(candidates, newCandidate(term, types.KeywordNounPhrase, nounPhraseImportance))
		} else {
			candidates = append(candidates, newCandidate(term, types.KeywordToken, tokenImportance))
		}
	}

	return candidates
}

// extractTokens keeps individual words that survive the stop-word, length,
// and digit filters.
func extractTokens(cleaned string) []candidate {
	candidates := []candidate{}

	for _, word := range wordPattern.FindAllString(cleaned, -1) {
		word = strings.Trim(word, "-.")
		if len(word) < MinKeywordLength {
			continue
		}
		if isStopWord(word) || isDigits(word) {
			continue
		}
		candidates = append(candidates, newCandidate(word, types.KeywordBasic, basicImportance))
	}

	return candidates
}

func isDigits(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(word) > 0
}

func newCandidate(text string, kind types.KeywordType, importance float64) candidate {
	return candidate{
		text:       text,
		normalized: strings.ToLower(text),
		kind:       kind,
		importance: importance,
	}
}

// rank applies length bounds, the frequency boost, dedup by normalized text
// (first occurrence wins, so higher-tier candidates shadow plain tokens),
// and the final importance ordering and cap.
func (e *Extractor) rank(candidates []candidate) []types.KeywordRecord {
	frequency := map[string]int{}
	for _, c := range candidates {
		frequency[c.normalized]++
	}

	seen := map[string]struct{}{}
	records := []types.KeywordRecord{}

	for _, c := range candidates {
		if len(c.text) < MinKeywordLength || len(c.text) > MaxKeywordLength {
			continue
		}
		if _, dup := seen[c.normalized]; dup {
			continue
		}
		seen[c.normalized] = struct{}{}

		freq := frequency[c.normalized]
		boost := float64(freq) * 0.1
		if boost > maxFrequencyBoost {
			boost = maxFrequencyBoost
		}
		importance := c.importance + boost
		if importance > 1.0 {
			importance = 1.0
		}

		records = append(records, types.KeywordRecord{
			Text:       c.text,
			Importance: &importance,
			Type:       c.kind,
			Frequency:  freq,
		})
	}

	// Stable so equally-important keywords keep extraction order.
	sort.SliceStable(records, func(i, j int) bool {
		return *records[i].Importance > *records[j].Importance
	})

	max := e.MaxKeywords
	if max <= 0 {
		max = DefaultMaxKeywords
	}
	if len(records) > max {
		records = records[:max]
	}

	return records
}
