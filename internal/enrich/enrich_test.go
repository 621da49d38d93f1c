package enrich

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonathan/franchise-advisor/internal/fetch"
	"github.com/jonathan/franchise-advisor/internal/llm"
	"github.com/jonathan/franchise-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves canned page text per URL.
type fakeFetcher struct {
	pages map[string]string
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*fetch.CachedResult, error) {
	f.calls++
	text, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("no page for %s", url)
	}
	return &fetch.CachedResult{Result: &fetch.Result{URL: url, Text: text}}, nil
}

// fakeLLM returns a fixed summary and records the request.
type fakeLLM struct {
	response string
	err      error
	lastReq  llm.Request
	calls    int
}

func (f *fakeLLM) Generate(_ context.Context, req llm.Request) (string, error) {
	f.calls++
	f.lastReq = req
	return f.response, f.err
}

func (f *fakeLLM) GetModel(llm.ModelTier) string { return "fake" }
func (f *fakeLLM) Close() error                  { return nil }

const longPageText = "Bean Scene operates drive-thru espresso stands across the Northwest. " +
	"Franchisees receive site selection help and a two-week training program. " +
	"The company was founded in 2009 and has 32 open units."

func TestEnrichListing_FillsMissingSummary(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{"https://example.com/bean": longPageText}}
	client := &fakeLLM{response: "Drive-thru espresso stands. Owners get site selection and training."}
	e := New(fetcher, client, false, false)

	listing := types.Listing{FranchiseName: "Bean Scene", URL: "https://example.com/bean"}
	got, err := e.EnrichListing(context.Background(), listing)

	require.NoError(t, err)
	assert.Equal(t, "Drive-thru espresso stands. Owners get site selection and training.", got.BusinessSummary)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, llm.TierLite, client.lastReq.Tier, "summaries use the lite tier")
	assert.Contains(t, client.lastReq.User, "Bean Scene")
	assert.Contains(t, client.lastReq.User, "drive-thru espresso")
}

func TestEnrichListing_ExistingSummaryUntouched(t *testing.T) {
	fetcher := &fakeFetcher{}
	e := New(fetcher, nil, false, false)

	listing := types.Listing{FranchiseName: "Bean Scene", BusinessSummary: "Already set", URL: "https://example.com/bean"}
	got, err := e.EnrichListing(context.Background(), listing)

	require.NoError(t, err)
	assert.Equal(t, "Already set", got.BusinessSummary)
	assert.Equal(t, 0, fetcher.calls, "no fetch when the summary is present")
}

func TestEnrichListing_NoURL(t *testing.T) {
	fetcher := &fakeFetcher{}
	e := New(fetcher, nil, false, false)

	got, err := e.EnrichListing(context.Background(), types.Listing{FranchiseName: "Bean Scene"})

	require.NoError(t, err)
	assert.Empty(t, got.BusinessSummary)
	assert.Equal(t, 0, fetcher.calls)
}

func TestEnrichListing_FetchFailureIsNonFatal(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	e := New(fetcher, &fakeLLM{response: "x"}, false, false)

	listing := types.Listing{FranchiseName: "Bean Scene", URL: "https://example.com/missing"}
	got, err := e.EnrichListing(context.Background(), listing)

	assert.Error(t, err)
	assert.Empty(t, got.BusinessSummary, "listing passes through unchanged")
}

func TestEnrichListing_GenerationFailureFallsBackToPageText(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{"https://example.com/bean": longPageText}}
	client := &fakeLLM{err: &llm.GenerationError{Message: "boom"}}
	e := New(fetcher, client, false, false)

	listing := types.Listing{FranchiseName: "Bean Scene", URL: "https://example.com/bean"}
	got, err := e.EnrichListing(context.Background(), listing)

	require.NoError(t, err)
	assert.Contains(t, got.BusinessSummary, "drive-thru espresso stands")
	assert.Contains(t, got.BusinessSummary, "training program.")
	assert.NotContains(t, got.BusinessSummary, "founded in 2009", "fallback keeps only two sentences")
}

func TestEnrichListing_NilClientUsesPageHead(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{"https://example.com/bean": longPageText}}
	e := New(fetcher, nil, false, false)

	listing := types.Listing{FranchiseName: "Bean Scene", URL: "https://example.com/bean"}
	got, err := e.EnrichListing(context.Background(), listing)

	require.NoError(t, err)
	assert.Contains(t, got.BusinessSummary, "Bean Scene operates")
}

func TestHeadSummary(t *testing.T) {
	assert.Equal(t, "One. Two.", headSummary("One. Two. Three."))
	assert.Equal(t, "Only one sentence", headSummary("Only  one \n sentence"))
	assert.Equal(t, "", headSummary(""))
}
