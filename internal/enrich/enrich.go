// Package enrich fills gaps in imported listings from the listing's own web
// page: rows that arrive without a business summary get one derived from the
// franchise directory page they link to.
package enrich

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/franchise-advisor/internal/fetch"
	"github.com/jonathan/franchise-advisor/internal/llm"
	"github.com/jonathan/franchise-advisor/internal/prompts"
	"github.com/jonathan/franchise-advisor/internal/types"
)

const (
	enrichFile = "enrich.json"

	summaryTemperature = 0.4
	summaryMaxTokens   = 200

	// maxPageChars caps how much page text goes into the prompt.
	maxPageChars = 6000
)

// Fetcher retrieves a listing page, possibly from cache.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.CachedResult, error)
}

// Enricher derives missing listing fields from fetched pages.
type Enricher struct {
	fetcher    Fetcher
	client     llm.Client
	useBrowser bool
	verbose    bool
}

// New creates an Enricher. client may be nil, in which case summaries fall
// back to the page's own opening text.
func New(fetcher Fetcher, client llm.Client, useBrowser, verbose bool) *Enricher {
	return &Enricher{
		fetcher:    fetcher,
		client:     client,
		useBrowser: useBrowser,
		verbose:    verbose,
	}
}

// EnrichListing returns the listing with its business summary filled in.
// Listings that already carry a summary, or that have no URL, pass through
// unchanged. Fetch and generation failures are non-fatal: the listing is
// returned as-is with the error for the caller to log.
func (e *Enricher) EnrichListing(ctx context.Context, listing types.Listing) (types.Listing, error) {
	if listing.BusinessSummary != "" || listing.URL == "" {
		return listing, nil
	}

	text, err := e.pageText(ctx, listing.URL)
	if err != nil {
		return listing, err
	}
	if strings.TrimSpace(text) == "" {
		return listing, fmt.Errorf("no usable text on %s", listing.URL)
	}

	summary, err := e.summarize(ctx, listing.FranchiseName, text)
	if err != nil {
		return listing, err
	}

	listing.BusinessSummary = summary
	return listing, nil
}

// pageText fetches the listing page and extracts its main text, falling back
// to headless browser rendering when the static fetch yields too little.
func (e *Enricher) pageText(ctx context.Context, url string) (string, error) {
	result, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	text := result.Text
	if fetch.ShouldUseBrowser(text) && e.useBrowser {
		if e.verbose {
			log.Printf("[enrich] static fetch too thin for %s, rendering in browser", url)
		}
		html, err := fetch.BrowserSimple(ctx, url, e.verbose)
		if err != nil {
			// Keep whatever the static fetch produced.
			return text, nil
		}
		platform := fetch.DetectPlatform(url)
		rendered, err := fetch.ExtractMainText(html, fetch.PlatformContentSelectors(platform), fetch.PlatformNoiseSelectors(platform)...)
		if err == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	if len(text) > maxPageChars {
		text = text[:maxPageChars]
	}
	return text, nil
}

// summarize produces the two-sentence catalog summary, preferring the lite
// model tier and degrading to the page's opening text without a client.
func (e *Enricher) summarize(ctx context.Context, name, pageText string) (string, error) {
	if e.client == nil {
		return headSummary(pageText), nil
	}

	user := prompts.Format(prompts.MustGet(enrichFile, "summary-user"), map[string]string{
		"Name":     name,
		"PageText": pageText,
	})

	summary, err := e.client.Generate(ctx, llm.Request{
		System:      prompts.MustGet(enrichFile, "summary-system"),
		User:        user,
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
		Tier:        llm.TierLite,
	})
	if err != nil {
		log.Printf("[enrich] summary generation failed for %s, using page text: %v", name, err)
		return headSummary(pageText), nil
	}
	return strings.TrimSpace(summary), nil
}

// headSummary takes the first two sentences of the page text.
func headSummary(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	count := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
			if count == 2 {
				return text[:i+1]
			}
		}
	}
	return text
}
