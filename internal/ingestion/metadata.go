package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes one extraction run over a document.
type Metadata struct {
	Source     string `json:"source"`     // file path or URL
	Method     string `json:"method"`     // text | pdf | html
	Pages      int    `json:"pages"`
	Characters int    `json:"characters"`
	Words      int    `json:"words"`
	Hash       string `json:"hash"`      // SHA256 hex digest of the extracted text
	Timestamp  string `json:"timestamp"` // RFC3339 format
}

// NewMetadata builds metadata for extracted text with the current timestamp.
func NewMetadata(source, method string, pages int, text string) *Metadata {
	return &Metadata{
		Source:     source,
		Method:     method,
		Pages:      pages,
		Characters: len(text),
		Words:      len(strings.Fields(text)),
		Hash:       computeHash(text),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
