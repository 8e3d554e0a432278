package ingestion

import (
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize caps how large a document may be before extraction is refused.
const MaxFileSize = 50 << 20 // 50 MB

// Document is an ingested file: normalized text plus extraction metadata.
type Document struct {
	Text     string    `json:"text"`
	Metadata *Metadata `json:"metadata"`
}

var textExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".text": true,
}

// IngestFile reads a document from disk and extracts normalized text.
// Supported formats: .pdf, .txt, .md, .text. Failure modes map to the
// package sentinels: missing files to ErrNotFound, unknown extensions to
// ErrUnsupportedFormat, oversized files to ErrTooLarge, and password
// protected PDFs to ErrEncrypted.
func IngestFile(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &DocumentError{Path: path, Message: "file does not exist", Cause: ErrNotFound}
		}
		return nil, &DocumentError{Path: path, Message: "cannot stat file", Cause: err}
	}

	if info.Size() > MaxFileSize {
		return nil, &DocumentError{Path: path, Message: "file too large", Cause: ErrTooLarge}
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return ingestPDF(path)
	case textExtensions[ext]:
		return ingestText(path)
	default:
		return nil, &DocumentError{Path: path, Message: "extension " + ext, Cause: ErrUnsupportedFormat}
	}
}

func ingestText(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentError{Path: path, Message: "failed to read file", Cause: err}
	}

	text := CleanText(string(content))
	return &Document{
		Text:     text,
		Metadata: NewMetadata(path, "text", 1, text),
	}, nil
}
