package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-matcher/internal/types"
)

// -----------------------------------------------------------------------------
// Keyword Report Methods
// -----------------------------------------------------------------------------

// DefaultHistoryLimit is the number of summaries ListReports returns when
// limit is not positive.
const DefaultHistoryLimit = 20

// ReportCreateInput is a report plus where its inputs came from.
type ReportCreateInput struct {
	Report     *types.KeywordReport
	JobSource  string // file path or URL of the job description
	JobText    string
	ResumeText string
}

// SaveReport stores a keyword report. The report must already carry an ID.
func (db *DB) SaveReport(ctx context.Context, input *ReportCreateInput) error {
	if input == nil || input.Report == nil {
		return fmt.Errorf("report is required")
	}
	r := input.Report
	if r.ID == uuid.Nil {
		return fmt.Errorf("report has no ID")
	}

	reportJSON, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO keyword_reports (id, company, role_guess, job_source, job_hash, resume_hash,
		                              keyword_count, missing_count, coverage_percent, report, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		r.ID, nullIfEmpty(r.Company), nullIfEmpty(r.RoleGuess), nullIfEmpty(input.JobSource),
		HashContent(input.JobText), HashContent(input.ResumeText),
		len(r.Keywords), r.MissingCount, r.CoveragePercent, reportJSON, r.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", r.ID, err)
	}
	return nil
}

// GetReport retrieves a stored report by ID. Returns nil, nil when it does not exist.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*types.KeywordReport, error) {
	var reportJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT report FROM keyword_reports WHERE id = $1`,
		id,
	).Scan(&reportJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var r types.KeywordReport
	if err := json.Unmarshal(reportJSON, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
	}
	return &r, nil
}

// ListReports returns the most recent report summaries, newest first.
func (db *DB) ListReports(ctx context.Context, limit int) ([]types.ReportSummary, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, COALESCE(company, ''), COALESCE(role_guess, ''),
		        keyword_count, missing_count, coverage_percent, created_at
		 FROM keyword_reports
		 ORDER BY created_at DESC, id
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	summaries := make([]types.ReportSummary, 0, limit)
	for rows.Next() {
		var s types.ReportSummary
		if err := rows.Scan(&s.ID, &s.Company, &s.RoleGuess,
			&s.KeywordCount, &s.MissingCount, &s.CoveragePercent, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report summaries: %w", err)
	}

	return summaries, nil
}

// DeleteReport removes a stored report. Deleting a missing report is not an error.
func (db *DB) DeleteReport(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM keyword_reports WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete report %s: %w", id, err)
	}
	return nil
}

// Summarize builds the listing row for a report without touching the database.
func Summarize(r *types.KeywordReport) types.ReportSummary {
	return types.ReportSummary{
		ID:              r.ID,
		Company:         r.Company,
		RoleGuess:       r.RoleGuess,
		KeywordCount:    len(r.Keywords),
		MissingCount:    r.MissingCount,
		CoveragePercent: r.CoveragePercent,
		CreatedAt:       r.GeneratedAt,
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
