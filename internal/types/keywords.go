// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

import "strings"

// KeywordType tags how a keyword was derived by the extractor.
type KeywordType string

// Keyword types produced by the extractor. Unknown is the fallback for
// records coming from external sources that carry no type tag.
const (
	KeywordEntity     KeywordType = "entity"
	KeywordNounPhrase KeywordType = "noun_phrase"
	KeywordToken      KeywordType = "token"
	KeywordBasic      KeywordType = "basic"
	KeywordUnknown    KeywordType = "unknown"
)

// Defaults applied when a KeywordRecord omits optional fields.
const (
	DefaultImportance = 0.5
	DefaultFrequency  = 1
)

// KeywordRecord is a single extracted term with an importance weight and
// category tag. Records are produced by the keyword extractor (or supplied
// directly by callers) and are immutable once created.
type KeywordRecord struct {
	Text       string      `json:"text"`
	Importance *float64    `json:"importance,omitempty"` // in [0,1]; nil means unspecified
	Type       KeywordType `json:"type,omitempty"`
	Frequency  int         `json:"frequency,omitempty"` // occurrences in the source text, >= 1
}

// NewKeywordRecord builds a record with an explicit importance.
func NewKeywordRecord(text string, importance float64) KeywordRecord {
	return KeywordRecord{Text: text, Importance: &importance}
}

// ImportanceOrDefault returns the record's importance, or DefaultImportance
// when the field was omitted.
func (k KeywordRecord) ImportanceOrDefault() float64 {
	if k.Importance == nil {
		return DefaultImportance
	}
	return *k.Importance
}

// TypeOrDefault returns the record's type tag, or KeywordUnknown when empty.
func (k KeywordRecord) TypeOrDefault() KeywordType {
	if k.Type == "" {
		return KeywordUnknown
	}
	return k.Type
}

// FrequencyOrDefault returns the record's frequency, or DefaultFrequency
// when the field was omitted or invalid.
func (k KeywordRecord) FrequencyOrDefault() int {
	if k.Frequency < 1 {
		return DefaultFrequency
	}
	return k.Frequency
}

// IsEmpty reports whether the record's text is empty after trimming.
func (k KeywordRecord) IsEmpty() bool {
	return strings.TrimSpace(k.Text) == ""
}

// NormalizedKeyword is the comparable form of a KeywordRecord, owned by the
// matcher for the duration of one match run. Normalized text is NOT unique
// across a list; duplicate normalized strings are tolerated and treated
// independently until consumption marks them used.
type NormalizedKeyword struct {
	Original   string      `json:"original"`
	Normalized string      `json:"normalized"` // lowercased, trimmed
	Cleaned    string      `json:"cleaned"`    // normalized with non-word characters collapsed to spaces
	Importance float64     `json:"importance"`
	Type       KeywordType `json:"type"`
	Frequency  int         `json:"frequency"`
}
