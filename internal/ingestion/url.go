package ingestion

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/logger"
)

var (
	// ErrInvalidURL is returned when URL is malformed
	ErrInvalidURL = errors.New("invalid URL")
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// URLOptions controls IngestFromURL.
type URLOptions struct {
	// Fetcher retrieves the posting; nil means an uncached fetcher.
	Fetcher *fetch.CachedFetcher
	// UseBrowser renders the page headlessly when the HTTP response holds too
	// little text, as single-page job boards do.
	UseBrowser bool
}

// IngestFromURL fetches a job posting, extracts its text with the selectors of
// its job board and returns the cleaned text with metadata.
func IngestFromURL(ctx context.Context, urlStr string, opts URLOptions) (string, *Metadata, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidURL, urlStr)
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(nil, nil)
	}

	log := logger.Ctx(ctx)
	result, err := fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	log.Debug().
		Str("url", urlStr).
		Str("platform", string(result.Platform)).
		Bool("from_cache", result.FromCache).
		Int("html_bytes", len(result.HTML)).
		Int("text_chars", len(result.Text)).
		Msg("fetched posting")

	text := result.Text
	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		log.Info().
			Int("chars", len(text)).
			Int("min_chars", fetch.MinContentLength).
			Msg("content too short, falling back to browser rendering")

		text = browserText(ctx, urlStr, text)
	}

	cleanedText := CleanText(text)
	if cleanedText == "" {
		return "", nil, fmt.Errorf("%w: no text found at %s: %w", ErrContentExtractionFailed, urlStr, ErrEmptyInput)
	}

	metadata := NewMetadata(cleanedText, FormatHTML)
	metadata.URL = urlStr
	metadata.Platform = string(result.Platform)
	metadata.FromCache = result.FromCache

	return cleanedText, metadata, nil
}

// browserText re-extracts the posting from browser-rendered HTML, keeping
// fallback when rendering or extraction fails.
func browserText(ctx context.Context, urlStr, fallback string) string {
	log := logger.Ctx(ctx)

	html, err := fetch.WithBrowser(ctx, urlStr, fetch.DefaultBrowserTimeout)
	if err != nil {
		log.Warn().Err(err).Msg("browser rendering failed, using HTTP content")
		return fallback
	}

	text, err := fetch.ExtractPostingText(html, urlStr)
	if err != nil {
		log.Warn().Err(err).Msg("browser content extraction failed, using HTTP content")
		return fallback
	}

	log.Debug().Int("chars", len(text)).Msg("browser extracted text")
	return text
}
