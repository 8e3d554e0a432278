package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var (
	extractIn       string
	extractOut      string
	extractMax      int
	extractIndustry string
	extractAnalyze  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract keywords from a document",
	Long:  "Ingests a resume or job description file and emits the extracted keywords as JSON. With --analyze the output also includes categorization and required-vs-preferred classification.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractIn, "in", "i", "", "Path to input file (.pdf, .txt, .md) (required)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write JSON output to this file instead of stdout")
	extractCmd.Flags().IntVar(&extractMax, "max", config.DefaultMaxKeywords, "Maximum keywords to extract")
	extractCmd.Flags().StringVar(&extractIndustry, "industry", "", "Seed extraction with an industry vocabulary (software_development, data_science, marketing)")
	extractCmd.Flags().BoolVar(&extractAnalyze, "analyze", false, "Emit full job analysis (categories and requirements)")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	doc, err := ingestion.IngestFile(extractIn)
	if err != nil {
		return err
	}

	extractor := keywords.NewExtractor(extractMax)
	if extractIndustry != "" {
		if keywords.IndustryKeywords(extractIndustry) == nil {
			return fmt.Errorf("unknown industry %q, supported: %s",
				extractIndustry, strings.Join(keywords.Industries(), ", "))
		}
		extractor.UseIndustryTerms(extractIndustry)
	}

	var output any
	if extractAnalyze {
		output = extractor.AnalyzeJobDescription(doc.Text)
	} else {
		records := extractor.Extract(doc.Text)
		if len(records) == 0 {
			return fmt.Errorf("no keywords extracted from %s", extractIn)
		}

		list := KeywordList{Source: extractIn, Keywords: records}
		data, err := json.Marshal(list)
		if err != nil {
			return fmt.Errorf("failed to marshal keywords: %w", err)
		}
		if err := validateAgainstSchema(schemas.KeywordListSchema, data); err != nil {
			return fmt.Errorf("extracted keywords failed schema validation: %w", err)
		}
		output = list
	}

	if extractOut != "" {
		if err := writeJSONFile(extractOut, output); err != nil {
			return err
		}
		fmt.Printf("Keywords written to %s\n", extractOut)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
