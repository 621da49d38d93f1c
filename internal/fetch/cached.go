// Package fetch provides generic URL fetching with optional caching.
package fetch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/franchise-advisor/internal/db"
)

// CachedFetcher wraps URL fetching with database-backed caching, so repeated
// imports do not hammer the franchise directories.
type CachedFetcher struct {
	db        *db.DB
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
		CacheTTL:  db.DefaultPageCacheTTL, // 7 days
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher. database may be nil, in
// which case every fetch goes to the network.
func NewCachedFetcher(database *db.DB, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = db.DefaultPageCacheTTL
	}
	return &CachedFetcher{
		db:        database,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool      // Whether this result came from cache
	PageID    uuid.UUID // Database ID of the cached page
}

// Fetch retrieves a URL, using the cache if available and fresh.
// Returns cached content if within TTL, otherwise fetches fresh content and caches it.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache && f.db != nil {
		cached, err := f.db.GetFreshCachedPage(ctx, urlStr)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return &CachedResult{
				Result: &Result{
					URL:        cached.URL,
					HTML:       cached.RawHTML,
					Text:       cached.ParsedText,
					StatusCode: cached.HTTPStatus,
				},
				FromCache: true,
				PageID:    cached.ID,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	text, _ := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	result.Text = text

	if f.db != nil {
		page := &db.CachedPage{
			URL:        urlStr,
			RawHTML:    result.HTML,
			ParsedText: result.Text,
			HTTPStatus: result.StatusCode,
		}
		// The fetch succeeded; a cache write failure is not fatal.
		if err := f.db.UpsertCachedPage(ctx, page, f.cacheTTL); err == nil {
			return &CachedResult{
				Result:    result,
				FromCache: false,
				PageID:    page.ID,
			}, nil
		}
	}

	return &CachedResult{
		Result:    result,
		FromCache: false,
	}, nil
}

// InvalidateCache marks a cached page as stale, forcing a re-fetch on next request.
func (f *CachedFetcher) InvalidateCache(ctx context.Context, urlStr string) error {
	if f.db == nil {
		return nil
	}
	return f.db.ExpireCachedPage(ctx, urlStr)
}
