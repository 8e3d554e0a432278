package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort      int
	serveDBURL     string
	serveThreshold int
	serveMaxKw     int
	serveVerbose   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Starts the REST API for running analyses and, when a database is configured, storing and retrieving them.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL URL for persistence (defaults to DATABASE_URL)")
	serveCmd.Flags().IntVarP(&serveThreshold, "threshold", "t", config.DefaultFuzzyThreshold, "Default fuzzy match threshold 0-100")
	serveCmd.Flags().IntVar(&serveMaxKw, "max-keywords", config.DefaultMaxKeywords, "Maximum keywords to extract per document")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	dbURL := serveDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}

	level := "info"
	if serveVerbose {
		level = "debug"
	}
	logger := logging.New(level)
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(server.Config{
		Port:           servePort,
		DatabaseURL:    dbURL,
		FuzzyThreshold: serveThreshold,
		MaxKeywords:    serveMaxKw,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
