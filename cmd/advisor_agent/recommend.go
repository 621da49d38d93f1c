package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/franchise-advisor/internal/compose"
	"github.com/jonathan/franchise-advisor/internal/config"
	"github.com/jonathan/franchise-advisor/internal/matching"
	"github.com/jonathan/franchise-advisor/internal/observability"
	"github.com/jonathan/franchise-advisor/internal/types"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Produce a one-shot recommendation from a complete profile",
	Long: `Skips the conversation and runs filter + composition directly against
profile values supplied as flags. Useful for scripting and for inspecting how
a given profile matches the dataset.`,
	RunE: runRecommend,
}

var (
	recConfigPath  string
	recDataset     string
	recAPIKey      string
	recModel       string
	recTopK        int
	recDatabaseURL string
	recVerbose     bool

	recInterests string
	recCapital   int
	recHours     string
	recSize      string
)

func init() {
	recommendCmd.Flags().StringVar(&recConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	recommendCmd.Flags().StringVarP(&recDataset, "dataset", "d", "", "Path to the franchise listings CSV (defaults to ADVISOR_DATASET env var)")
	recommendCmd.Flags().StringVar(&recAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	recommendCmd.Flags().StringVar(&recModel, "model", "", "Model override for response composition")
	recommendCmd.Flags().IntVar(&recTopK, "top-k", 0, "Maximum franchises per recommendation")
	recommendCmd.Flags().StringVar(&recDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	recommendCmd.Flags().BoolVarP(&recVerbose, "verbose", "v", false, "Print the profile and filter trace alongside the recommendation")

	recommendCmd.Flags().StringVar(&recInterests, "interests", "", "Comma-separated interest keywords (e.g. \"fitness,coffee\")")
	recommendCmd.Flags().IntVar(&recCapital, "capital", 0, "Liquid capital in dollars")
	recommendCmd.Flags().StringVar(&recHours, "hours", "", "Time commitment: owner, semi, or passive")
	recommendCmd.Flags().StringVar(&recSize, "size", "", "Size preference: small, large, or either")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	profile, err := profileFromFlags()
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(recConfigPath, config.Config{
		Dataset:     recDataset,
		APIKey:      recAPIKey,
		Model:       recModel,
		TopK:        recTopK,
		DatabaseURL: recDatabaseURL,
		Verbose:     recVerbose,
	})
	if err != nil {
		return err
	}

	listings, cleanup, err := loadListings(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	composer := compose.New(client, listings, cfg.TopK)
	message := composer.Recommend(ctx, profile)
	fmt.Println(message)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(profile)
		matched, traces := matching.FilterWithTrace(profile, listings, cfg.TopK)
		printer.PrintFilterTrace(traces, len(listings))
		printer.PrintMatches(matched)
		printer.PrintGrounding(compose.Grounded(message, matched))
	}
	return nil
}

// profileFromFlags builds and validates the profile the conversation would
// otherwise have collected. Hours and size accept the same vocabulary the
// extractors normalize to.
func profileFromFlags() (*types.Profile, error) {
	profile := &types.Profile{Capital: recCapital}

	for _, kw := range strings.Split(recInterests, ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			profile.Interests = append(profile.Interests, kw)
		}
	}

	switch recHours {
	case "":
	case string(types.HoursOwner), string(types.HoursSemi), string(types.HoursPassive):
		profile.Hours = types.HoursCommitment(recHours)
	default:
		return nil, fmt.Errorf("invalid --hours %q: must be owner, semi, or passive", recHours)
	}

	switch recSize {
	case "":
	case string(types.SizeSmall), string(types.SizeLarge), string(types.SizeEither):
		profile.Size = types.SizePreference(recSize)
	default:
		return nil, fmt.Errorf("invalid --size %q: must be small, large, or either", recSize)
	}

	if recCapital < 0 {
		return nil, fmt.Errorf("invalid --capital %d: must be non-negative", recCapital)
	}
	return profile, nil
}
