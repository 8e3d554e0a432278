package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// KeywordList is the on-disk keyword file format shared by the extract and
// match commands. It must conform to schemas/keyword_list.schema.json.
type KeywordList struct {
	Source   string                `json:"source,omitempty"`
	Keywords []types.KeywordRecord `json:"keywords"`
}

// loadKeywordList reads and parses a keyword file, validating it against the
// keyword-list schema first. A schema that cannot be loaded degrades to a
// warning; a document that fails validation is a hard error.
func loadKeywordList(path string) (*KeywordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword file %s: %w", path, err)
	}

	if err := validateAgainstSchema(schemas.KeywordListSchema, data); err != nil {
		return nil, fmt.Errorf("keyword file %s: %w", path, err)
	}

	var list KeywordList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse keyword file %s: %w", path, err)
	}
	if len(list.Keywords) == 0 {
		return nil, fmt.Errorf("keyword file %s contains no keywords", path)
	}

	return &list, nil
}

// validateAgainstSchema validates JSON bytes against one of the shipped
// schemas. Validation failures are returned; problems loading the schema
// itself (missing file, unparsable schema) only produce a stderr warning so
// an incomplete installation does not block the pipeline.
func validateAgainstSchema(schemaRelPath string, document []byte) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		fmt.Fprintf(os.Stderr, "Warning: schema %s not found, skipping validation\n", schemaRelPath)
		return nil
	}

	err := schemas.ValidateBytes(schemaPath, document)
	if err == nil {
		return nil
	}

	var loadErr *schemas.SchemaLoadError
	if errors.As(err, &loadErr) {
		fmt.Fprintf(os.Stderr, "Warning: could not validate against %s: %v\n", schemaRelPath, loadErr)
		return nil
	}

	return err
}

// writeJSONTo streams v as indented JSON to w.
func writeJSONTo(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeJSONFile marshals v with indentation and writes it to path.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// printReport writes a human-readable summary of a match report to stdout.
func printReport(report *types.MatchReport) {
	fmt.Printf("\nMatch Results\n")
	fmt.Printf("=============\n")
	fmt.Printf("Overall score:      %.1f%% (%s)\n", report.Scores.OverallScore, report.Summary.OverallAssessment)
	fmt.Printf("Coverage:           %.1f%% of %d job keywords\n", report.Scores.CoveragePercentage, report.TotalJobKeywords)
	fmt.Printf("Resume utilization: %.1f%% of %d resume keywords\n", report.Scores.ResumeUtilization, report.TotalResumeKeywords)
	fmt.Printf("\nMatches: %d exact, %d fuzzy, %d partial\n",
		report.Scores.ExactCount, report.Scores.FuzzyCount, report.Scores.PartialCount)

	if len(report.MissingKeywords) > 0 {
		fmt.Printf("\nMissing keywords (%d):\n", len(report.MissingKeywords))
		for _, mk := range report.MissingKeywords {
			fmt.Printf("  - %s (importance %.2f)\n", mk.Keyword, mk.Importance)
		}
	}

	if len(report.Summary.Recommendations) > 0 {
		fmt.Printf("\nRecommendations:\n")
		for _, rec := range report.Summary.Recommendations {
			fmt.Printf("  * %s\n", rec)
		}
	}
	fmt.Println()
}

// writeReport optionally writes the report to outPath, validating the JSON
// against the match-report schema before writing.
func writeReport(report *types.MatchReport, outPath string) error {
	if outPath == "" {
		return nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := validateAgainstSchema(schemas.MatchReportSchema, data); err != nil {
		return fmt.Errorf("report failed schema validation: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", outPath, err)
	}

	fmt.Printf("Report written to %s\n", outPath)
	return nil
}
