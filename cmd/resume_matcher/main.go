// Package main provides the resume-matcher CLI: keyword extraction,
// resume/job matching, and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume keyword matching and scoring",
	Long:  "Resume Matcher extracts keywords from resumes and job descriptions, matches them across exact, fuzzy, and partial tiers, and scores how well a resume covers a job posting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
