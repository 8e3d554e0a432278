package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func records(texts ...string) []types.KeywordRecord {
	out := make([]types.KeywordRecord, 0, len(texts))
	for _, text := range texts {
		out = append(out, types.NewKeywordRecord(text, 0.7))
	}
	return out
}

func TestMatch_IdenticalLists(t *testing.T) {
	keywords := records("python", "django", "sql")

	report := NewDefault().Match(keywords, keywords)

	require.Len(t, report.ExactMatches, 3)
	for _, m := range report.ExactMatches {
		assert.Equal(t, types.MatchExact, m.MatchType)
		assert.Equal(t, 1.0, m.Confidence)
		assert.Equal(t, ExactWeight, m.Weight)
	}
	assert.Empty(t, report.FuzzyMatches)
	assert.Empty(t, report.PartialMatches)
	assert.Empty(t, report.MissingKeywords)
	assert.InDelta(t, 100.0, report.Scores.OverallScore, 0.001)
}

func TestMatch_DisjointVocabularies(t *testing.T) {
	resume := records("haskell", "erlang")
	job := records("cobol", "fortran")

	report := NewDefault().Match(resume, job)

	assert.Empty(t, report.ExactMatches)
	assert.Empty(t, report.FuzzyMatches)
	assert.Empty(t, report.PartialMatches)
	require.Len(t, report.MissingKeywords, 2)
	assert.Equal(t, "cobol", report.MissingKeywords[0].Keyword)
	assert.Equal(t, "fortran", report.MissingKeywords[1].Keyword)
	assert.Equal(t, 0.0, report.Scores.OverallScore)
}

func TestMatch_ExactPrecedenceOverFuzzyAndPartial(t *testing.T) {
	// "python" appears in both lists, so it must be claimed by the exact
	// tier only, even though "python3" is a near-duplicate fuzzy/partial
	// candidate elsewhere in the job list.
	resume := records("python")
	job := records("python", "python3")

	report := NewDefault().Match(resume, job)

	require.Len(t, report.ExactMatches, 1)
	assert.Equal(t, "python", report.ExactMatches[0].NormalizedJob)
	assert.Empty(t, report.FuzzyMatches)
	assert.Empty(t, report.PartialMatches)
	require.Len(t, report.MissingKeywords, 1)
	assert.Equal(t, "python3", report.MissingKeywords[0].Keyword)
}

func TestMatch_DuplicateKeywordsCollapseToSingleExactMatch(t *testing.T) {
	resume := records("sql", "SQL")
	job := records("sql", "Sql", "sql")

	report := NewDefault().Match(resume, job)

	require.Len(t, report.ExactMatches, 1)
	assert.Equal(t, "sql", report.ExactMatches[0].NormalizedResume)
	// The first resume and first job instance win.
	assert.Equal(t, "sql", report.ExactMatches[0].ResumeKeyword)
	assert.Equal(t, "sql", report.ExactMatches[0].JobKeyword)
	assert.Empty(t, report.MissingKeywords)
}

func TestMatch_FuzzyPicksHighestRatio(t *testing.T) {
	resume := records("pythn")
	job := records("java", "python")

	report := NewDefault().Match(resume, job)

	assert.Empty(t, report.ExactMatches)
	require.Len(t, report.FuzzyMatches, 1)
	m := report.FuzzyMatches[0]
	assert.Equal(t, "python", m.NormalizedJob)
	assert.Equal(t, types.MatchFuzzy, m.MatchType)
	assert.Equal(t, FuzzyWeight, m.Weight)
	assert.GreaterOrEqual(t, m.Confidence, 0.70)
}

func TestMatch_FuzzyThresholdBoundary(t *testing.T) {
	// ratio("test", "tent") is exactly 75: one substitution across
	// 8 total characters.
	resume := records("test")
	job := records("tent")

	atThreshold := New(75).Match(resume, job)
	require.Len(t, atThreshold.FuzzyMatches, 1)
	assert.InDelta(t, 0.75, atThreshold.FuzzyMatches[0].Confidence, 0.001)

	aboveThreshold := New(76).Match(resume, job)
	assert.Empty(t, aboveThreshold.FuzzyMatches)
}

func TestMatch_PartialSubstring(t *testing.T) {
	// ratio("developer", "senior developer") is 72, so the fuzzy tier is
	// pushed out of the way with a higher threshold to expose the partial
	// tier's substring rule.
	resume := records("developer")
	job := records("senior developer")

	report := New(80).Match(resume, job)

	assert.Empty(t, report.ExactMatches)
	assert.Empty(t, report.FuzzyMatches)
	require.Len(t, report.PartialMatches, 1)
	m := report.PartialMatches[0]
	assert.Equal(t, types.MatchPartial, m.MatchType)
	assert.Equal(t, PartialConfidence, m.Confidence)
	assert.Equal(t, PartialWeight, m.Weight)
}

func TestMatch_PartialWordOverlap(t *testing.T) {
	// Word sets {project, management} and {management, of, projects}
	// overlap on "management": 1 >= 0.5 * min(2, 3).
	resume := records("project management")
	job := records("management of projects")

	report := NewDefault().Match(resume, job)

	require.Len(t, report.PartialMatches, 1)
	assert.Equal(t, "management of projects", report.PartialMatches[0].NormalizedJob)
}

func TestMatch_EmptyJobListZeroesScores(t *testing.T) {
	report := NewDefault().Match(records("python"), nil)

	assert.Equal(t, 0.0, report.Scores.OverallScore)
	assert.Equal(t, 0.0, report.Scores.MatchPercentage)
	assert.Equal(t, 0.0, report.Scores.ResumeUtilization)
	assert.Empty(t, report.MissingKeywords)
	assert.Equal(t, 0, report.TotalJobKeywords)
	assert.Equal(t, 1, report.TotalResumeKeywords)
}

func TestMatch_EmptyResumeListEverythingMissing(t *testing.T) {
	report := NewDefault().Match(nil, records("python", "sql"))

	assert.Empty(t, report.ExactMatches)
	assert.Len(t, report.MissingKeywords, 2)
	assert.Equal(t, 0.0, report.Scores.ResumeUtilization)
	assert.Equal(t, 0.0, report.Scores.OverallScore)
}

func TestMatch_Idempotent(t *testing.T) {
	resume := records("python", "djngo", "project management", "rust")
	job := records("python", "django", "management of projects", "flask")

	first := NewDefault().Match(resume, job)
	second := NewDefault().Match(resume, job)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestMatch_EndToEndScenario(t *testing.T) {
	resume := []types.KeywordRecord{
		types.NewKeywordRecord("python", 0.9),
		types.NewKeywordRecord("django", 0.7),
		types.NewKeywordRecord("sql", 0.6),
	}
	job := []types.KeywordRecord{
		types.NewKeywordRecord("python", 0.9),
		types.NewKeywordRecord("flask", 0.8),
		types.NewKeywordRecord("sql", 0.6),
	}

	report := NewDefault().Match(resume, job)

	require.Len(t, report.ExactMatches, 2)
	assert.Equal(t, "python", report.ExactMatches[0].NormalizedJob)
	assert.Equal(t, "sql", report.ExactMatches[1].NormalizedJob)

	require.Len(t, report.MissingKeywords, 1)
	assert.Equal(t, "flask", report.MissingKeywords[0].Keyword)
	assert.Equal(t, 0.8, report.MissingKeywords[0].Importance)

	assert.InDelta(t, 66.666, report.Scores.OverallScore, 0.01)
	assert.Equal(t, "Fair Match", report.Summary.OverallAssessment)
}

func TestMatch_ReportListsAreNeverNil(t *testing.T) {
	report := NewDefault().Match(nil, nil)

	assert.NotNil(t, report.ExactMatches)
	assert.NotNil(t, report.FuzzyMatches)
	assert.NotNil(t, report.PartialMatches)
	assert.NotNil(t, report.MissingKeywords)
}

func TestNew_ClampsThreshold(t *testing.T) {
	assert.Equal(t, 0, New(-5).FuzzyThreshold)
	assert.Equal(t, 100, New(250).FuzzyThreshold)
	assert.Equal(t, 70, New(70).FuzzyThreshold)
}
