//go:build integration

package db

import (
	"context"
	"testing"
	"time"
)

func getTestPageCacheDB(t *testing.T) *DB {
	t.Helper()

	db := getTestDB(t)
	ctx := context.Background()
	if err := db.EnsurePageCacheSchema(ctx); err != nil {
		t.Fatalf("EnsurePageCacheSchema failed: %v", err)
	}
	_, _ = db.pool.Exec(ctx, "DELETE FROM page_cache WHERE url LIKE 'https://test.invalid/%'")

	return db
}

func TestIntegration_PageCacheRoundTrip(t *testing.T) {
	db := getTestPageCacheDB(t)
	defer db.Close()
	ctx := context.Background()

	page := &CachedPage{
		URL:        "https://test.invalid/bean-scene",
		RawHTML:    "<html><body>Bean Scene</body></html>",
		ParsedText: "Bean Scene",
		HTTPStatus: 200,
	}
	if err := db.UpsertCachedPage(ctx, page, time.Hour); err != nil {
		t.Fatalf("UpsertCachedPage failed: %v", err)
	}
	if page.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Expected upsert to assign the page ID")
	}

	got, err := db.GetFreshCachedPage(ctx, page.URL)
	if err != nil {
		t.Fatalf("GetFreshCachedPage failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a fresh cache hit")
	}
	if got.ParsedText != "Bean Scene" || got.HTTPStatus != 200 {
		t.Errorf("Cached page did not round-trip: %+v", got)
	}
}

func TestIntegration_PageCacheUpsertRefreshes(t *testing.T) {
	db := getTestPageCacheDB(t)
	defer db.Close()
	ctx := context.Background()

	page := &CachedPage{URL: "https://test.invalid/gym", ParsedText: "old"}
	if err := db.UpsertCachedPage(ctx, page, time.Hour); err != nil {
		t.Fatalf("UpsertCachedPage failed: %v", err)
	}
	firstID := page.ID

	page.ParsedText = "new"
	if err := db.UpsertCachedPage(ctx, page, time.Hour); err != nil {
		t.Fatalf("UpsertCachedPage failed: %v", err)
	}
	if page.ID != firstID {
		t.Errorf("Expected the same row on refresh, got %s and %s", firstID, page.ID)
	}

	got, err := db.GetFreshCachedPage(ctx, page.URL)
	if err != nil {
		t.Fatalf("GetFreshCachedPage failed: %v", err)
	}
	if got == nil || got.ParsedText != "new" {
		t.Errorf("Expected refreshed text, got %+v", got)
	}
}

func TestIntegration_ExpireCachedPage(t *testing.T) {
	db := getTestPageCacheDB(t)
	defer db.Close()
	ctx := context.Background()

	page := &CachedPage{URL: "https://test.invalid/pets", ParsedText: "pets"}
	if err := db.UpsertCachedPage(ctx, page, time.Hour); err != nil {
		t.Fatalf("UpsertCachedPage failed: %v", err)
	}

	if err := db.ExpireCachedPage(ctx, page.URL); err != nil {
		t.Fatalf("ExpireCachedPage failed: %v", err)
	}

	got, err := db.GetFreshCachedPage(ctx, page.URL)
	if err != nil {
		t.Fatalf("GetFreshCachedPage failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected no fresh entry after expiry, got %+v", got)
	}
}

func TestIntegration_GetFreshCachedPageMissing(t *testing.T) {
	db := getTestPageCacheDB(t)
	defer db.Close()

	got, err := db.GetFreshCachedPage(context.Background(), "https://test.invalid/nope")
	if err != nil {
		t.Fatalf("GetFreshCachedPage failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing page, got %+v", got)
	}
}
