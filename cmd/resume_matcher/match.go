package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/matching"
)

var (
	matchResumeKeywords string
	matchJobKeywords    string
	matchThreshold      int
	matchOut            string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match pre-extracted keyword lists",
	Long:  "Runs tiered matching over two keyword-list JSON files produced by the extract command (or any tool emitting the keyword-list format).",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchResumeKeywords, "resume-keywords", "", "Path to resume keyword-list JSON (required)")
	matchCmd.Flags().StringVar(&matchJobKeywords, "job-keywords", "", "Path to job keyword-list JSON (required)")
	matchCmd.Flags().IntVarP(&matchThreshold, "threshold", "t", config.DefaultFuzzyThreshold, "Fuzzy match threshold 0-100")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Write the full JSON report to this file")
	_ = matchCmd.MarkFlagRequired("resume-keywords")
	_ = matchCmd.MarkFlagRequired("job-keywords")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchThreshold < 0 || matchThreshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100, got %d", matchThreshold)
	}

	resumeList, err := loadKeywordList(matchResumeKeywords)
	if err != nil {
		return err
	}
	jobList, err := loadKeywordList(matchJobKeywords)
	if err != nil {
		return err
	}

	report := matching.New(matchThreshold).Match(resumeList.Keywords, jobList.Keywords)
	printReport(report)

	return writeReport(report, matchOut)
}
