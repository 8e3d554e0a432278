// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Defaults applied by MergeWithDefaults when a field is unset.
const (
	DefaultFuzzyThreshold = 70
	DefaultMaxKeywords    = 100
	DefaultPort           = 8080
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"`  // Path to resume file (.pdf, .txt, .md)
	Job    string `json:"job,omitempty"`     // Path to job description file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job posting from

	// Matching
	FuzzyThreshold int `json:"fuzzy_threshold,omitempty" validate:"omitempty,gte=0,lte=100"`
	MaxKeywords    int `json:"max_keywords,omitempty" validate:"omitempty,gte=10,lte=1000"`

	// Server
	Port int `json:"port,omitempty" validate:"omitempty,gte=1,lte=65535"`

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("config error: field '%s' failed '%s' validation", e.Field(), e.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults, and the hard-coded fallbacks applied last.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = DefaultFuzzyThreshold
	}

	if result.MaxKeywords == 0 {
		result.MaxKeywords = defaults.MaxKeywords
	}
	if result.MaxKeywords == 0 {
		result.MaxKeywords = DefaultMaxKeywords
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	// Bool fields cannot distinguish unset from false, so CLI flags win.

	return result
}
