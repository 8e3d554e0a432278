package ingestion

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// ingestPDF extracts plain text from a PDF page by page. Encrypted
// documents surface ErrEncrypted; pages whose text cannot be decoded are
// skipped rather than failing the whole document.
func ingestPDF(path string) (*Document, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		if isEncryptedErr(err) {
			return nil, &DocumentError{Path: path, Message: "cannot open PDF", Cause: ErrEncrypted}
		}
		return nil, &DocumentError{Path: path, Message: "cannot open PDF", Cause: err}
	}
	defer file.Close()

	pages := reader.NumPage()
	var builder strings.Builder

	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	text := CleanText(builder.String())
	return &Document{
		Text:     text,
		Metadata: NewMetadata(path, "pdf", pages, text),
	}, nil
}

func isEncryptedErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "encrypted")
}
