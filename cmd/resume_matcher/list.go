package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
)

var (
	listDBURL string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored analyses",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listDBURL, "db-url", "", "PostgreSQL URL (defaults to DATABASE_URL)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "Maximum number of analyses to show")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	database, err := openDatabase(cmd.Context(), listDBURL)
	if err != nil {
		return err
	}
	defer database.Close()

	analyses, err := database.ListAnalyses(cmd.Context(), listLimit)
	if err != nil {
		return err
	}

	if len(analyses) == 0 {
		fmt.Println("No stored analyses.")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %6s  %-15s  %s\n", "ID", "CREATED", "SCORE", "ASSESSMENT", "RESUME / JOB")
	for _, a := range analyses {
		fmt.Printf("%-36s  %-19s  %5.1f%%  %-15s  %s / %s\n",
			a.ID, a.CreatedAt.Format("2006-01-02 15:04:05"),
			a.OverallScore, a.Assessment,
			orDash(a.ResumeSource), orDash(a.JobSource))
	}
	return nil
}

// openDatabase connects using the flag value or the DATABASE_URL fallback.
func openDatabase(ctx context.Context, flagURL string) (*db.DB, error) {
	dbURL := flagURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("a database URL is required (use --db-url or set DATABASE_URL)")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database, err := db.Connect(connectCtx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(connectCtx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return database, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
