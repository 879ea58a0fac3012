package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/logger"
)

// PostingCache stores fetched postings between runs. *db.DB implements it.
type PostingCache interface {
	GetFreshPosting(ctx context.Context, url string, maxAge time.Duration) (*db.CachedPosting, error)
	UpsertPosting(ctx context.Context, p *db.CachedPosting) error
}

// CachedFetcher wraps posting fetches with an optional cache.
type CachedFetcher struct {
	cache     PostingCache
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // For testing or forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  db.DefaultPostingCacheTTL,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher. A nil cache fetches every time.
func NewCachedFetcher(cache PostingCache, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	options := config.Options
	if options == nil {
		options = DefaultOptions()
	}
	ttl := config.CacheTTL
	if ttl == 0 {
		ttl = db.DefaultPostingCacheTTL
	}
	return &CachedFetcher{
		cache:     cache,
		options:   options,
		cacheTTL:  ttl,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	Platform  Platform
	FromCache bool // Whether this result came from cache
}

// Fetch retrieves a job posting and extracts its text with the selectors of
// its platform. A fresh cached copy is returned without a request.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	platform := DetectPlatform(urlStr)

	if f.cache != nil && !f.skipCache {
		cached, err := f.cache.GetFreshPosting(ctx, urlStr, f.cacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to check cache: %w", err)
		}
		if cached != nil {
			logger.Debug().Str("url", urlStr).Time("fetched_at", cached.FetchedAt).Msg("posting cache hit")
			return &CachedResult{
				Result: &Result{
					URL:        cached.URL,
					HTML:       cached.RawHTML,
					Text:       cached.CleanedText,
					StatusCode: cached.HTTPStatus,
				},
				Platform:  platform,
				FromCache: true,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	text, err := ExtractPostingText(result.HTML, urlStr)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}
	result.Text = text

	if f.cache != nil {
		posting := &db.CachedPosting{
			URL:         urlStr,
			Platform:    string(platform),
			RawHTML:     result.HTML,
			CleanedText: result.Text,
			HTTPStatus:  result.StatusCode,
		}
		if err := f.cache.UpsertPosting(ctx, posting); err != nil {
			// The fetch succeeded; a cache write failure only costs a refetch.
			logger.Warn().Err(err).Str("url", urlStr).Msg("failed to cache posting")
		}
	}

	return &CachedResult{Result: result, Platform: platform}, nil
}
