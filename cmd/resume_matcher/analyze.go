package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeThreshold  int
	analyzeMaxKw      int
	analyzeOut        string
	analyzeConfigPath string
	analyzeDBURL      string
	analyzeSave       bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze how well a resume matches a job description",
	Long:  "Ingests a resume and a job description (file or URL), extracts keywords from both, runs tiered matching, and prints a scored report.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.pdf, .txt, .md)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of a job posting to fetch")
	analyzeCmd.Flags().IntVarP(&analyzeThreshold, "threshold", "t", 0, "Fuzzy match threshold 0-100 (default 70)")
	analyzeCmd.Flags().IntVar(&analyzeMaxKw, "max-keywords", 0, "Maximum keywords to extract per document (default 100)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the full JSON report to this file")
	analyzeCmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeDBURL, "db-url", "", "PostgreSQL URL for persistence (defaults to DATABASE_URL)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the analysis to the database")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print extraction details")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveAnalyzeConfig()
	if err != nil {
		return err
	}

	extractor := keywords.NewExtractor(cfg.MaxKeywords)

	var (
		resumeDoc, jobDoc *ingestion.Document
		resumeKeywords    []types.KeywordRecord
		jobAnalysis       keywords.JobAnalysis
		jobSource         string
	)
	resumeSource := cfg.Resume

	// Ingestion and extraction for the two documents are independent, so
	// run them concurrently. URL fetches dominate the latency here.
	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		doc, err := ingestion.IngestFile(cfg.Resume)
		if err != nil {
			return fmt.Errorf("resume: %w", err)
		}
		resumeDoc = doc
		resumeKeywords = extractor.Extract(doc.Text)
		return nil
	})

	g.Go(func() error {
		var doc *ingestion.Document
		var err error
		if cfg.JobURL != "" {
			jobSource = cfg.JobURL
			doc, err = ingestion.IngestURL(ctx, cfg.JobURL)
		} else {
			jobSource = cfg.Job
			doc, err = ingestion.IngestFile(cfg.Job)
		}
		if err != nil {
			return fmt.Errorf("job description: %w", err)
		}
		if err := keywords.ValidateJobText(doc.Text); err != nil {
			return fmt.Errorf("job description %s: %w", jobSource, err)
		}
		jobDoc = doc
		jobAnalysis = extractor.AnalyzeJobDescription(doc.Text)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if len(resumeKeywords) == 0 {
		return fmt.Errorf("no keywords extracted from resume %s", resumeSource)
	}
	if len(jobAnalysis.Keywords) == 0 {
		return fmt.Errorf("no keywords extracted from job description %s", jobSource)
	}

	if cfg.Verbose {
		fmt.Printf("Resume: %s (%d words, %d keywords)\n",
			resumeSource, resumeDoc.Metadata.Words, len(resumeKeywords))
		fmt.Printf("Job:    %s (%d words, %d keywords, %d required, %d preferred)\n",
			jobSource, jobDoc.Metadata.Words, len(jobAnalysis.Keywords),
			len(jobAnalysis.Requirements.Required), len(jobAnalysis.Requirements.Preferred))
	}

	report := matching.New(cfg.FuzzyThreshold).Match(resumeKeywords, jobAnalysis.Keywords)
	printReport(report)

	if err := writeReport(report, analyzeOut); err != nil {
		return err
	}

	if analyzeSave {
		id, err := persistAnalysis(cmd.Context(), cfg, resumeSource, jobSource, report)
		if err != nil {
			return err
		}
		fmt.Printf("Analysis saved with ID %s\n", id)
	}

	return nil
}

// resolveAnalyzeConfig merges CLI flags over an optional config file and
// applies defaults. Flags take precedence where set.
func resolveAnalyzeConfig() (config.Config, error) {
	fileCfg := config.Config{}
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	flagCfg := config.Config{
		Resume:         analyzeResume,
		Job:            analyzeJob,
		JobURL:         analyzeJobURL,
		FuzzyThreshold: analyzeThreshold,
		MaxKeywords:    analyzeMaxKw,
		DatabaseURL:    analyzeDBURL,
		Verbose:        analyzeVerbose,
	}

	cfg := flagCfg.MergeWithDefaults(fileCfg)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.Resume == "" {
		return config.Config{}, fmt.Errorf("a resume is required (use --resume)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return config.Config{}, fmt.Errorf("a job description is required (use --job or --job-url)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return config.Config{}, fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func persistAnalysis(ctx context.Context, cfg config.Config, resumeSource, jobSource string, report *types.MatchReport) (string, error) {
	if cfg.DatabaseURL == "" {
		return "", fmt.Errorf("--save requires a database URL (use --db-url or set DATABASE_URL)")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database, err := db.Connect(connectCtx, cfg.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(connectCtx); err != nil {
		return "", fmt.Errorf("failed to run migrations: %w", err)
	}

	id, err := database.SaveAnalysis(ctx, resumeSource, jobSource, cfg.FuzzyThreshold, report)
	if err != nil {
		return "", fmt.Errorf("failed to save analysis: %w", err)
	}

	return id.String(), nil
}
