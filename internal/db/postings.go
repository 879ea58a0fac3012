package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Job Posting Cache Methods
// -----------------------------------------------------------------------------

// DefaultPostingCacheTTL is how long before a cached job posting is considered stale
const DefaultPostingCacheTTL = 24 * time.Hour

// CachedPosting is a fetched job posting page and the text extracted from it.
type CachedPosting struct {
	URL         string
	Platform    string
	RawHTML     string
	CleanedText string
	ContentHash string
	HTTPStatus  int
	FetchedAt   time.Time
}

// IsFresh reports whether the posting was fetched within maxAge of now.
func (p *CachedPosting) IsFresh(now time.Time, maxAge time.Duration) bool {
	return now.Sub(p.FetchedAt) < maxAge
}

// GetPosting retrieves a cached posting by URL. Returns nil, nil when it does not exist.
func (db *DB) GetPosting(ctx context.Context, url string) (*CachedPosting, error) {
	var p CachedPosting
	err := db.pool.QueryRow(ctx,
		`SELECT url, platform, raw_html, cleaned_text, content_hash, http_status, fetched_at
		 FROM job_postings WHERE url = $1`,
		url,
	).Scan(&p.URL, &p.Platform, &p.RawHTML, &p.CleanedText, &p.ContentHash, &p.HTTPStatus, &p.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return &p, nil
}

// GetFreshPosting returns the cached posting for url if it is younger than maxAge.
// Returns nil, nil when missing or stale.
func (db *DB) GetFreshPosting(ctx context.Context, url string, maxAge time.Duration) (*CachedPosting, error) {
	posting, err := db.GetPosting(ctx, url)
	if err != nil {
		return nil, err
	}
	if posting == nil || !posting.IsFresh(time.Now(), maxAge) {
		return nil, nil
	}

	// Update last accessed
	_, _ = db.pool.Exec(ctx,
		"UPDATE job_postings SET last_accessed_at = NOW() WHERE url = $1",
		url)

	return posting, nil
}

// UpsertPosting creates or refreshes a cached posting. FetchedAt and
// ContentHash are set on p.
func (db *DB) UpsertPosting(ctx context.Context, p *CachedPosting) error {
	if p == nil || p.URL == "" {
		return fmt.Errorf("posting URL is required")
	}
	p.ContentHash = HashContent(p.CleanedText)

	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (url, platform, raw_html, cleaned_text, content_hash, http_status, fetched_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())
		 ON CONFLICT (url) DO UPDATE SET
		     platform = $2,
		     raw_html = $3,
		     cleaned_text = $4,
		     content_hash = $5,
		     http_status = $6,
		     fetched_at = NOW()
		 RETURNING fetched_at`,
		p.URL, p.Platform, p.RawHTML, p.CleanedText, p.ContentHash, p.HTTPStatus,
	).Scan(&p.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert job posting: %w", err)
	}
	return nil
}
