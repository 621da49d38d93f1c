// Command import_listings loads the franchise dataset CSV into the Postgres
// listings table, validating every row against the listing JSON schema and
// optionally enriching rows that lack a business summary from their directory
// page.
//
// Usage:
//
//	go run cmd/tools/import_listings/main.go -dataset data/listings.csv [-replace] [-enrich]
//
// Requires DATABASE_URL environment variable to be set. Enrichment uses
// GEMINI_API_KEY when present and falls back to page text when it is not.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/franchise-advisor/internal/dataset"
	"github.com/jonathan/franchise-advisor/internal/db"
	"github.com/jonathan/franchise-advisor/internal/enrich"
	"github.com/jonathan/franchise-advisor/internal/fetch"
	"github.com/jonathan/franchise-advisor/internal/llm"
	"github.com/jonathan/franchise-advisor/internal/schemas"
	"github.com/jonathan/franchise-advisor/internal/types"
)

const listingSchemaFile = "schemas/listing.schema.json"

func main() {
	datasetPath := flag.String("dataset", "", "Path to the franchise listings CSV (required)")
	replace := flag.Bool("replace", false, "Delete all existing listings before importing")
	enrichRows := flag.Bool("enrich", false, "Fill missing business summaries from each listing's page")
	useBrowser := flag.Bool("use-browser", false, "Render thin pages in a headless browser during enrichment (requires Chrome)")
	concurrency := flag.Int("concurrency", 4, "Concurrent page fetches during enrichment")
	skipCache := flag.Bool("skip-cache", false, "Bypass the page cache and fetch every page fresh")
	verbose := flag.Bool("verbose", false, "Print per-row progress")
	flag.Parse()

	if *datasetPath == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -dataset is required")
		flag.Usage()
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()

	listings, err := dataset.Load(*datasetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d rows from %s\n", len(listings), *datasetPath)

	valid, skipped := validateRows(listings, *verbose)
	if skipped > 0 {
		fmt.Printf("Skipping %d rows that failed schema validation\n", skipped)
	}
	if len(valid) == 0 {
		fmt.Fprintln(os.Stderr, "ERROR: no valid rows to import")
		os.Exit(1)
	}

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to ensure schema: %v\n", err)
		os.Exit(1)
	}

	if *enrichRows {
		if err := database.EnsurePageCacheSchema(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: failed to ensure page cache schema: %v\n", err)
			os.Exit(1)
		}
		enrichAll(ctx, database, valid, *useBrowser, *skipCache, *concurrency, *verbose)
	}

	if *replace {
		if err := database.DeleteListings(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: failed to clear listings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cleared existing listings")
	}

	imported := 0
	failed := 0
	for position, listing := range valid {
		if _, err := database.UpsertListing(ctx, listing, position); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", listing.FranchiseName, err)
			failed++
			continue
		}
		if *verbose {
			fmt.Printf("  ✓ %s\n", listing.FranchiseName)
		}
		imported++
	}

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("  Imported: %d\n", imported)
	fmt.Printf("  Invalid:  %d\n", skipped)
	fmt.Printf("  Failed:   %d\n", failed)
}

// validateRows checks every row against the listing schema, returning the
// rows that passed. Invalid rows are reported and dropped; one bad row never
// aborts the import.
func validateRows(listings []types.Listing, verbose bool) ([]types.Listing, int) {
	schemaPath := schemas.ResolveSchemaPath(listingSchemaFile)
	if schemaPath == "" {
		fmt.Fprintf(os.Stderr, "ERROR: schema file not found: %s\n", listingSchemaFile)
		os.Exit(1)
	}
	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to read schema: %v\n", err)
		os.Exit(1)
	}
	schema := string(schemaData)

	valid := make([]types.Listing, 0, len(listings))
	skipped := 0
	for i, listing := range listings {
		doc, err := json.Marshal(listing)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ row %d: %v\n", i+1, err)
			skipped++
			continue
		}
		if err := schemas.ValidateJSONString(schema, string(doc)); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ row %d (%s): %v\n", i+1, listing.FranchiseName, err)
			skipped++
			continue
		}
		if verbose {
			fmt.Printf("  ✓ row %d (%s) valid\n", i+1, listing.FranchiseName)
		}
		valid = append(valid, listing)
	}
	return valid, skipped
}

// enrichAll fills missing business summaries in place, fetching listing pages
// with bounded concurrency. Enrichment failures leave the row as-is; the
// import proceeds regardless.
func enrichAll(ctx context.Context, database *db.DB, listings []types.Listing, useBrowser, skipCache bool, concurrency int, verbose bool) {
	var client llm.Client
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		c, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: LLM client unavailable, summaries will use page text: %v\n", err)
		} else {
			client = c
			defer func() { _ = client.Close() }()
		}
	}

	fetcherCfg := fetch.DefaultCachedFetcherConfig()
	fetcherCfg.SkipCache = skipCache
	fetcher := fetch.NewCachedFetcher(database, fetcherCfg)
	enricher := enrich.New(fetcher, client, useBrowser, verbose)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var enriched atomic.Int32
	for i := range listings {
		if listings[i].BusinessSummary != "" || listings[i].URL == "" {
			continue
		}
		i := i
		g.Go(func() error {
			updated, err := enricher.EnrichListing(gctx, listings[i])
			if err != nil {
				fmt.Fprintf(os.Stderr, "  ! %s: enrichment failed: %v\n", listings[i].FranchiseName, err)
				return nil
			}
			listings[i] = updated
			if verbose {
				fmt.Printf("  + %s: summary added\n", listings[i].FranchiseName)
			}
			enriched.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	fmt.Printf("Enriched %d rows\n", enriched.Load())
}
