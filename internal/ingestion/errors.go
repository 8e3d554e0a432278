// Package ingestion reads resume and job description documents from disk,
// extracts their text, and normalizes it for keyword extraction.
package ingestion

import (
	"errors"
	"fmt"
)

// Sentinel errors for the document failure modes callers branch on with
// errors.Is. Everything else surfaces as a wrapped DocumentError.
var (
	ErrNotFound          = errors.New("document not found")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrTooLarge          = errors.New("document exceeds size limit")
	ErrEncrypted         = errors.New("document is password protected")
)

// DocumentError represents a document processing failure
type DocumentError struct {
	Path    string
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("document error: %s (%s)", e.Message, e.Path)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}
