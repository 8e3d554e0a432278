package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestIndustryKeywords(t *testing.T) {
	assert.Contains(t, IndustryKeywords("data_science"), "Tableau")
	assert.Contains(t, IndustryKeywords("DATA_SCIENCE"), "Pandas")
	assert.Nil(t, IndustryKeywords("fishing"))
}

func TestIndustries(t *testing.T) {
	assert.Equal(t, []string{"data_science", "marketing", "software_development"}, Industries())
}

func TestExtract_IndustryTermsExtendVocabulary(t *testing.T) {
	text := "built reporting dashboards in power bi for finance teams"

	plain := NewExtractor(0).Extract(text)
	for _, r := range plain {
		assert.NotEqual(t, "power bi", r.Text)
	}

	seeded := NewExtractor(0)
	seeded.UseIndustryTerms("data_science")
	records := seeded.Extract(text)

	var powerBI *types.KeywordRecord
	for i := range records {
		if records[i].Text == "power bi" {
			powerBI = &records[i]
		}
	}
	require.NotNil(t, powerBI, "industry term not extracted")
	assert.Equal(t, types.KeywordNounPhrase, powerBI.Type)
}

func TestAddCustomTerms_PreprocessesPunctuation(t *testing.T) {
	// Document text goes through the same preprocessing, so "CI/CD" in a
	// posting reads "ci cd" by matching time.
	e := NewExtractor(0)
	e.AddCustomTerms("CI/CD")

	records := e.Extract("pipelines with ci/cd automation everywhere")
	assert.Contains(t, keywordTexts(records), "ci cd")
}
