// Package matching implements the tiered keyword matcher that compares
// resume keywords against job description keywords. Matching runs as a
// single pass over normalized keyword lists: exact, fuzzy, and partial
// tiers execute in strict precedence order, threading consumed-string sets
// forward so each stage only sees what earlier stages left unclaimed.
package matching

import (
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/summary"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights and confidences per match tier. These are fixed; only the fuzzy
// threshold is runtime-configurable.
const (
	ExactWeight       = 1.0
	FuzzyWeight       = 0.8
	PartialWeight     = 0.6
	PartialConfidence = 0.6

	// DefaultFuzzyThreshold is the minimum similarity ratio (0-100) for a
	// fuzzy pairing to qualify.
	DefaultFuzzyThreshold = 70
)

// Matcher compares resume keywords against job description keywords.
// A Matcher holds no per-run state: Match is pure, deterministic for a
// given input, and safe to call concurrently.
type Matcher struct {
	// FuzzyThreshold is the minimum similarity ratio (0-100) for the fuzzy
	// tier. Values outside the range are clamped.
	FuzzyThreshold int
}

// New creates a Matcher with the given fuzzy threshold, clamped to [0,100].
func New(fuzzyThreshold int) *Matcher {
	if fuzzyThreshold < 0 {
		fuzzyThreshold = 0
	}
	if fuzzyThreshold > 100 {
		fuzzyThreshold = 100
	}
	return &Matcher{FuzzyThreshold: fuzzyThreshold}
}

// NewDefault creates a Matcher with DefaultFuzzyThreshold.
func NewDefault() *Matcher {
	return New(DefaultFuzzyThreshold)
}

// Match classifies every job keyword as exactly matched, fuzzily matched,
// partially matched, or missing, then aggregates scores and a summary.
// Empty or malformed inputs degrade to zeroed results rather than errors.
func (m *Matcher) Match(resumeKeywords, jobKeywords []types.KeywordRecord) *types.MatchReport {
	resume := NormalizeKeywords(resumeKeywords)
	job := NormalizeKeywords(jobKeywords)

	exactMatches, exactConsumed := findExactMatches(resume, job)
	fuzzyMatches, fuzzyResume, _ := findFuzzyMatches(resume, job, exactConsumed, m.FuzzyThreshold)
	partialMatches := findPartialMatches(resume, job, exactConsumed, fuzzyResume)
	missing := findMissingKeywords(job, exactMatches, fuzzyMatches, partialMatches)

	scores := scoring.Compute(exactMatches, fuzzyMatches, partialMatches, len(resume), len(job))

	return &types.MatchReport{
		ExactMatches:        exactMatches,
		FuzzyMatches:        fuzzyMatches,
		PartialMatches:      partialMatches,
		MissingKeywords:     missing,
		Scores:              scores,
		Summary:             summary.Build(exactMatches, fuzzyMatches, partialMatches, missing, scores),
		TotalResumeKeywords: len(resume),
		TotalJobKeywords:    len(job),
		MatchPercentage:     scores.OverallScore,
	}
}
