package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/franchise-advisor/internal/compose"
	"github.com/jonathan/franchise-advisor/internal/config"
	"github.com/jonathan/franchise-advisor/internal/dataset"
	"github.com/jonathan/franchise-advisor/internal/db"
	"github.com/jonathan/franchise-advisor/internal/dialogue"
	"github.com/jonathan/franchise-advisor/internal/llm"
	"github.com/jonathan/franchise-advisor/internal/types"
)

// resolveConfig builds the effective configuration: config file first (when
// given), then environment variables for anything still unset, then package
// defaults. CLI flag overrides are applied by the caller before this runs.
func resolveConfig(path string, overrides config.Config) (config.Config, error) {
	var fileCfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return overrides, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	// File values beat env values; flag overrides beat both.
	defaults := fileCfg.MergeWithDefaults(config.FromEnv())
	cfg := overrides.MergeWithDefaults(defaults)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadListings reads the franchise table from Postgres when a database URL is
// configured, falling back to the CSV dataset otherwise. The returned cleanup
// closes the connection pool; it is a no-op for the CSV path.
func loadListings(ctx context.Context, cfg config.Config) ([]types.Listing, func(), error) {
	noop := func() {}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to database: %w", err)
		}

		listings, err := database.ListListings(ctx)
		if err != nil {
			database.Close()
			return nil, noop, fmt.Errorf("failed to load listings from database: %w", err)
		}
		if len(listings) > 0 {
			return listings, database.Close, nil
		}

		// Empty table: fall through to the CSV if one is configured.
		database.Close()
		if cfg.Dataset == "" {
			return nil, noop, fmt.Errorf("listings table is empty and no dataset file configured; run the import tool first")
		}
		log.Printf("listings table is empty, falling back to dataset file %s", cfg.Dataset)
	}

	if cfg.Dataset == "" {
		return nil, noop, fmt.Errorf("no listing source configured: set --dataset, ADVISOR_DATASET, or DATABASE_URL")
	}

	listings, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return nil, noop, err
	}
	return listings, noop, nil
}

// buildClient creates the Gemini client. A missing API key aborts before any
// conversation begins; generation failures later degrade per turn instead.
func buildClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	modelCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		modelCfg = modelCfg.WithModel(llm.TierStandard, cfg.Model)
	}
	return llm.NewClient(ctx, modelCfg, cfg.APIKey)
}

// buildEngine assembles the dialogue engine over the loaded listings. The
// composer doubles as recommender and rephraser; with a nil client both roles
// degrade to deterministic text.
func buildEngine(client llm.Client, listings []types.Listing, topK int) *dialogue.Engine {
	composer := compose.New(client, listings, topK)

	var rephraser dialogue.Rephraser
	if client != nil {
		rephraser = composer
	}
	return dialogue.NewEngine(composer, rephraser, 0)
}
