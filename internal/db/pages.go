package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPageCacheTTL is how long a fetched listing page stays fresh.
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// CachedPage is one fetched listing page held in the database cache.
type CachedPage struct {
	ID         uuid.UUID
	URL        string
	RawHTML    string
	ParsedText string
	HTTPStatus int
	FetchedAt  time.Time
	ExpiresAt  time.Time
}

// EnsurePageCacheSchema creates the page cache table if it does not exist.
func (db *DB) EnsurePageCacheSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS page_cache (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			url         TEXT NOT NULL UNIQUE,
			raw_html    TEXT NOT NULL DEFAULT '',
			parsed_text TEXT NOT NULL DEFAULT '',
			http_status INTEGER NOT NULL DEFAULT 0,
			fetched_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at  TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure page cache schema: %w", err)
	}
	return nil
}

// GetFreshCachedPage returns the cached page for a URL if it has not expired.
// Returns nil when there is no fresh entry.
func (db *DB) GetFreshCachedPage(ctx context.Context, url string) (*CachedPage, error) {
	var page CachedPage
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, raw_html, parsed_text, http_status, fetched_at, expires_at
		 FROM page_cache WHERE url = $1 AND expires_at > NOW()`,
		url,
	).Scan(&page.ID, &page.URL, &page.RawHTML, &page.ParsedText, &page.HTTPStatus,
		&page.FetchedAt, &page.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}
	return &page, nil
}

// UpsertCachedPage stores or refreshes a fetched page with the given TTL.
func (db *DB) UpsertCachedPage(ctx context.Context, page *CachedPage, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultPageCacheTTL
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO page_cache (url, raw_html, parsed_text, http_status, fetched_at, expires_at)
		 VALUES ($1, $2, $3, $4, NOW(), NOW() + $5::interval)
		 ON CONFLICT (url) DO UPDATE SET
		     raw_html = $2, parsed_text = $3, http_status = $4,
		     fetched_at = NOW(), expires_at = NOW() + $5::interval
		 RETURNING id`,
		page.URL, page.RawHTML, page.ParsedText, page.HTTPStatus,
		fmt.Sprintf("%d seconds", int(ttl.Seconds())),
	).Scan(&page.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert cached page: %w", err)
	}
	return nil
}

// ExpireCachedPage marks a cached page as stale, forcing a re-fetch on the
// next request.
func (db *DB) ExpireCachedPage(ctx context.Context, url string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE page_cache SET expires_at = NOW() - interval '1 hour' WHERE url = $1`,
		url)
	if err != nil {
		return fmt.Errorf("failed to expire cached page: %w", err)
	}
	return nil
}
