package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	text := "python developer with sql experience"
	metadata := NewMetadata("/tmp/resume.txt", "text", 1, text)

	assert.Equal(t, "/tmp/resume.txt", metadata.Source)
	assert.Equal(t, "text", metadata.Method)
	assert.Equal(t, 1, metadata.Pages)
	assert.Equal(t, len(text), metadata.Characters)
	assert.Equal(t, 5, metadata.Words)
	assert.Equal(t, computeHash(text), metadata.Hash)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestMetadata_ToJSON(t *testing.T) {
	metadata := NewMetadata("https://example.com/job", "html", 1, "job text")

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, metadata.Source, decoded.Source)
	assert.Equal(t, metadata.Hash, decoded.Hash)
	assert.Equal(t, metadata.Words, decoded.Words)
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("resume text")
	hash2 := computeHash("other text")

	assert.Len(t, hash1, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("resume text"))
}
