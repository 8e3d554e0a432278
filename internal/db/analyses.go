package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ErrAnalysisNotFound is returned when no analysis exists for an ID.
var ErrAnalysisNotFound = errors.New("analysis not found")

// Analysis is one persisted matching run.
type Analysis struct {
	ID             uuid.UUID          `json:"id"`
	ResumeSource   string             `json:"resume_source,omitempty"`
	JobSource      string             `json:"job_source,omitempty"`
	FuzzyThreshold int                `json:"fuzzy_threshold"`
	OverallScore   float64            `json:"overall_score"`
	Assessment     string             `json:"assessment"`
	Report         *types.MatchReport `json:"report,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// AnalysisSummary is a lightweight view for listings, without the report.
type AnalysisSummary struct {
	ID             uuid.UUID `json:"id"`
	ResumeSource   string    `json:"resume_source,omitempty"`
	JobSource      string    `json:"job_source,omitempty"`
	FuzzyThreshold int       `json:"fuzzy_threshold"`
	OverallScore   float64   `json:"overall_score"`
	Assessment     string    `json:"assessment"`
	CreatedAt      time.Time `json:"created_at"`
}

// SaveAnalysis stores a match report and returns the new analysis ID.
func (db *DB) SaveAnalysis(ctx context.Context, resumeSource, jobSource string, fuzzyThreshold int, report *types.MatchReport) (uuid.UUID, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, resume_source, job_source, fuzzy_threshold, overall_score, assessment, report)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, resumeSource, jobSource, fuzzyThreshold,
		report.Scores.OverallScore, report.Summary.OverallAssessment, reportJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a full analysis, report included.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var a Analysis
	var reportJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_source, job_source, fuzzy_threshold, overall_score, assessment, report, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.ResumeSource, &a.JobSource, &a.FuzzyThreshold, &a.OverallScore, &a.Assessment, &reportJSON, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var report types.MatchReport
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	a.Report = &report

	return &a, nil
}

// ListAnalyses retrieves recent analyses, newest first. A non-positive limit
// defaults to 50.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_source, job_source, fuzzy_threshold, overall_score, assessment, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		if err := rows.Scan(&a.ID, &a.ResumeSource, &a.JobSource, &a.FuzzyThreshold, &a.OverallScore, &a.Assessment, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// DeleteAnalysis removes an analysis by ID.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}
