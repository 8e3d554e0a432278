package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

// IngestURL fetches a job posting and reduces it to normalized text.
// Platform detection picks content and noise selectors suited to the job
// board serving the page. Pages that come back nearly empty from a plain
// HTTP fetch are retried through headless Chrome, since several job boards
// render postings client-side.
func IngestURL(ctx context.Context, urlStr string) (*Document, error) {
	platform := fetch.DetectPlatform(urlStr)

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, &DocumentError{Path: urlStr, Message: "failed to fetch URL", Cause: err}
	}

	text, err := extractJobText(result.HTML, platform)
	if err != nil {
		return nil, &DocumentError{Path: urlStr, Message: "failed to extract text", Cause: err}
	}

	if fetch.ShouldRenderWithBrowser(text) {
		if html, renderErr := fetch.RenderWithBrowser(ctx, urlStr, 0); renderErr == nil {
			if rendered, extractErr := extractJobText(html, platform); extractErr == nil && len(rendered) > len(text) {
				text = rendered
			}
		}
	}

	if text == "" {
		return nil, &DocumentError{Path: urlStr, Message: fmt.Sprintf("no text content at %s", urlStr)}
	}

	return &Document{
		Text:     text,
		Metadata: NewMetadata(urlStr, "html", 1, text),
	}, nil
}

func extractJobText(html string, platform fetch.Platform) (string, error) {
	text, err := fetch.ExtractMainText(
		html,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...,
	)
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}
