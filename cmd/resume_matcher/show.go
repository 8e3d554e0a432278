package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
)

var (
	showDBURL string
	showJSON  bool
)

var showCmd = &cobra.Command{
	Use:   "show <analysis-id>",
	Short: "Show a stored analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showDBURL, "db-url", "", "PostgreSQL URL (defaults to DATABASE_URL)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the full report as JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid analysis ID %q: %w", args[0], err)
	}

	database, err := openDatabase(cmd.Context(), showDBURL)
	if err != nil {
		return err
	}
	defer database.Close()

	analysis, err := database.GetAnalysis(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrAnalysisNotFound) {
			return fmt.Errorf("no analysis with ID %s", id)
		}
		return err
	}

	if showJSON {
		return writeJSONTo(cmd.OutOrStdout(), analysis)
	}

	fmt.Printf("Analysis %s\n", analysis.ID)
	fmt.Printf("Created:   %s\n", analysis.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Resume:    %s\n", orDash(analysis.ResumeSource))
	fmt.Printf("Job:       %s\n", orDash(analysis.JobSource))
	fmt.Printf("Threshold: %d\n", analysis.FuzzyThreshold)
	printReport(analysis.Report)
	return nil
}
