package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetAnalyzeFlags restores the package-level flag variables that
// resolveAnalyzeConfig reads, since cobra binds them globally.
func resetAnalyzeFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		analyzeResume = ""
		analyzeJob = ""
		analyzeJobURL = ""
		analyzeThreshold = 0
		analyzeMaxKw = 0
		analyzeConfigPath = ""
		analyzeDBURL = ""
	})
}

func writeTempText(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveAnalyzeConfig_Defaults(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeResume = writeTempText(t, "resume.md", "python engineer")
	analyzeJob = writeTempText(t, "job.txt", "python role")

	cfg, err := resolveAnalyzeConfig()
	require.NoError(t, err)

	assert.Equal(t, 70, cfg.FuzzyThreshold)
	assert.Equal(t, 100, cfg.MaxKeywords)
	assert.Equal(t, analyzeResume, cfg.Resume)
}

func TestResolveAnalyzeConfig_MissingResume(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeJob = writeTempText(t, "job.txt", "python role")

	_, err := resolveAnalyzeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--resume")
}

func TestResolveAnalyzeConfig_MissingJob(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeResume = writeTempText(t, "resume.md", "python engineer")

	_, err := resolveAnalyzeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--job")
}

func TestResolveAnalyzeConfig_JobAndURLExclusive(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeResume = writeTempText(t, "resume.md", "python engineer")
	analyzeJob = writeTempText(t, "job.txt", "python role")
	analyzeJobURL = "https://boards.greenhouse.io/acme/jobs/123"

	_, err := resolveAnalyzeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestResolveAnalyzeConfig_InvalidThreshold(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeResume = writeTempText(t, "resume.md", "python engineer")
	analyzeJob = writeTempText(t, "job.txt", "python role")
	analyzeThreshold = 150

	_, err := resolveAnalyzeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FuzzyThreshold")
}

func TestResolveAnalyzeConfig_FileConfigFillsGaps(t *testing.T) {
	resetAnalyzeFlags(t)
	resume := writeTempText(t, "resume.md", "python engineer")
	job := writeTempText(t, "job.txt", "python role")

	analyzeConfigPath = writeTempText(t, "config.json",
		`{"resume": "`+resume+`", "job": "`+job+`", "fuzzy_threshold": 85}`)

	cfg, err := resolveAnalyzeConfig()
	require.NoError(t, err)
	assert.Equal(t, resume, cfg.Resume)
	assert.Equal(t, 85, cfg.FuzzyThreshold)
}

func TestResolveAnalyzeConfig_FlagsOverrideConfig(t *testing.T) {
	resetAnalyzeFlags(t)
	resume := writeTempText(t, "resume.md", "python engineer")
	job := writeTempText(t, "job.txt", "python role")

	analyzeConfigPath = writeTempText(t, "config.json", `{"fuzzy_threshold": 85}`)
	analyzeResume = resume
	analyzeJob = job
	analyzeThreshold = 60

	cfg, err := resolveAnalyzeConfig()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FuzzyThreshold)
}
