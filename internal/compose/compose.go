// Package compose turns a filtered listing set into the user-facing
// recommendation message. Prose generation is delegated to the LLM under a
// hard grounding contract: the model may only talk about listings present
// in the supplied context, and output that breaks that contract is replaced
// by a deterministic templated summary.
package compose

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/franchise-advisor/internal/dataset"
	"github.com/jonathan/franchise-advisor/internal/llm"
	"github.com/jonathan/franchise-advisor/internal/matching"
	"github.com/jonathan/franchise-advisor/internal/prompts"
	"github.com/jonathan/franchise-advisor/internal/types"
)

// Generation knobs. The broker summary wants some creative latitude; the
// question rephraser a little more. Both are capped well under a screenful.
const (
	brokerTemperature   = 0.65
	rephraseTemperature = 0.7
	maxOutputTokens     = 700
)

// Composer produces the assistant's recommendation and question messages.
type Composer struct {
	client   llm.Client
	listings []types.Listing
	topK     int
}

// New creates a Composer over the loaded dataset. client may be nil, in
// which case every message falls back to its deterministic template.
func New(client llm.Client, listings []types.Listing, topK int) *Composer {
	if topK <= 0 {
		topK = matching.DefaultTopK
	}
	return &Composer{client: client, listings: listings, topK: topK}
}

// Recommend filters the dataset against the completed profile and returns
// the final recommendation message. It never fails: an empty result yields
// the fixed no-matches message, and a generation failure or grounding
// violation yields the templated summary.
func (c *Composer) Recommend(ctx context.Context, profile *types.Profile) string {
	matched := matching.Filter(profile, c.listings, c.topK)
	if len(matched) == 0 {
		return prompts.MustGet("compose.json", "no-matches")
	}

	fallback := c.templatedSummary(matched)
	if c.client == nil {
		return fallback
	}

	contextBlock := BuildContext(matched)
	text, err := c.client.Generate(ctx, llm.Request{
		System: prompts.MustGet("compose.json", "broker-system"),
		User: prompts.Format(prompts.MustGet("compose.json", "broker-user"),
			map[string]string{"Context": contextBlock}),
		Temperature: brokerTemperature,
		MaxTokens:   maxOutputTokens,
		Tier:        llm.TierStandard,
	})
	if err != nil {
		log.Printf("recommendation generation failed, using templated summary: %v", err)
		return fallback
	}

	text = strings.TrimSpace(text)
	if !Grounded(text, matched) {
		log.Printf("generated summary failed grounding check, using templated summary")
		return fallback
	}
	return text
}

// RephraseQuestion asks the lite model to restate a baseline question in a
// natural tone. Rephrasing is cosmetic: any failure returns the baseline.
func (c *Composer) RephraseQuestion(ctx context.Context, baseline string) string {
	if c.client == nil {
		return baseline
	}

	text, err := c.client.Generate(ctx, llm.Request{
		System:      prompts.MustGet("dialogue.json", "rephrase-system"),
		User:        baseline,
		Temperature: rephraseTemperature,
		MaxTokens:   maxOutputTokens,
		Tier:        llm.TierLite,
	})
	if err != nil {
		log.Printf("question rephrase failed, using baseline: %v", err)
		return baseline
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return baseline
	}
	return text
}

// BuildContext renders one formatted entry per listing, the only facts the
// generation step is allowed to use.
func BuildContext(matched []types.Listing) string {
	entries := make([]string, 0, len(matched))
	for _, row := range matched {
		entries = append(entries, formatEntry(row))
	}
	return strings.Join(entries, "\n\n")
}

// brandSpan matches the bolded names the broker prompt requires around
// every franchise the model presents.
var brandSpan = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// Grounded checks the generated text against the context: every brand the
// model presents must be a listing it was actually given. The prompt makes
// the model bold each franchise name exactly as supplied, so each bolded
// span must match a context entry; a span naming anything else is
// fabrication and the text is discarded. Text with no verifiable brand at
// all is discarded too. The model may skip a weak match; it may not invent
// one. Enforced here because the prompt contract alone cannot be trusted.
func Grounded(text string, matched []types.Listing) bool {
	names := make(map[string]bool, len(matched))
	for _, row := range matched {
		if name := strings.ToLower(strings.TrimSpace(row.FranchiseName)); name != "" {
			names[name] = true
		}
	}

	verified := false
	for _, span := range brandSpan.FindAllStringSubmatch(text, -1) {
		if !names[strings.ToLower(strings.TrimSpace(span[1]))] {
			return false
		}
		verified = true
	}
	return verified
}

// templatedSummary is the deterministic stand-in when generation is
// unavailable or ungrounded.
func (c *Composer) templatedSummary(matched []types.Listing) string {
	var b strings.Builder
	b.WriteString(prompts.MustGet("compose.json", "fallback-intro"))
	b.WriteString("\n\n")
	for _, row := range matched {
		b.WriteString(formatEntry(row))
		b.WriteString("\n\n")
	}
	b.WriteString(prompts.MustGet("compose.json", "fallback-outro"))
	return b.String()
}

// formatEntry matches the row format the broker prompt is written against.
func formatEntry(row types.Listing) string {
	return fmt.Sprintf(
		"**%s** (%s)\n- Startup Cost: %s\n- Franchise Fee: %s\n- Units Open: %s\n- URL: %s",
		orNA(row.FranchiseName),
		orNA(row.Industry),
		dataset.FormatMoney(row.CashRequired),
		dataset.FormatMoney(row.FranchiseFee),
		orNA(row.UnitsOpen),
		orNA(row.URL),
	)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
