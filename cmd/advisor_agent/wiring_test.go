package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/franchise-advisor/internal/config"
	"github.com/jonathan/franchise-advisor/internal/dialogue"
	"github.com/jonathan/franchise-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAdvisorEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ADVISOR_DATASET", "")
	t.Setenv("ADVISOR_MODEL", "")
	t.Setenv("ADVISOR_TOP_K", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
}

func TestResolveConfig_FlagBeatsFileBeatsEnv(t *testing.T) {
	clearAdvisorEnv(t)
	t.Setenv("ADVISOR_MODEL", "env-model")
	t.Setenv("ADVISOR_TOP_K", "3")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	err := os.WriteFile(cfgPath, []byte(`{"model": "file-model", "api_key": "file-key"}`), 0644)
	require.NoError(t, err)

	cfg, err := resolveConfig(cfgPath, config.Config{APIKey: "flag-key"})
	require.NoError(t, err)

	assert.Equal(t, "flag-key", cfg.APIKey, "flag wins over file")
	assert.Equal(t, "file-model", cfg.Model, "file wins over env")
	assert.Equal(t, 3, cfg.TopK, "env fills fields the file leaves unset")
}

func TestResolveConfig_DefaultTopK(t *testing.T) {
	clearAdvisorEnv(t)

	cfg, err := resolveConfig("", config.Config{})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTopK, cfg.TopK)
}

func TestResolveConfig_BadFile(t *testing.T) {
	clearAdvisorEnv(t)

	_, err := resolveConfig("/nonexistent/config.json", config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestLoadListings_FromCSV(t *testing.T) {
	clearAdvisorEnv(t)

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "listings.csv")
	content := "Franchise Name,Industry,Cash Required\nBean Scene Coffee,Coffee,\"$45,000\"\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0644))

	listings, cleanup, err := loadListings(context.Background(), config.Config{Dataset: csvPath})
	require.NoError(t, err)
	defer cleanup()

	require.Len(t, listings, 1)
	assert.Equal(t, "Bean Scene Coffee", listings[0].FranchiseName)
}

func TestLoadListings_NoSourceConfigured(t *testing.T) {
	clearAdvisorEnv(t)

	_, _, err := loadListings(context.Background(), config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no listing source configured")
}

func TestBuildClient_MissingKeyIsFatal(t *testing.T) {
	client, err := buildClient(context.Background(), config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	assert.Nil(t, client)
}

func TestBuildEngine_OfflineConversation(t *testing.T) {
	listings := []types.Listing{
		{FranchiseName: "Bean Scene Coffee", Industry: "Coffee", CashRequired: "$45,000"},
	}
	engine := buildEngine(nil, listings, 0)

	st := dialogue.NewState()
	greeting := engine.Greet(st)
	assert.NotEmpty(t, greeting)

	result := engine.HandleTurn(context.Background(), st, "coffee shops")
	require.NotEmpty(t, result.Messages)
	assert.False(t, st.Stage.Terminal())
}

func TestProfileFromFlags(t *testing.T) {
	recInterests = "Fitness, coffee"
	recCapital = 60000
	recHours = "semi"
	recSize = "either"
	defer func() {
		recInterests, recCapital, recHours, recSize = "", 0, "", ""
	}()

	profile, err := profileFromFlags()
	require.NoError(t, err)
	assert.Equal(t, []string{"fitness", "coffee"}, profile.Interests)
	assert.Equal(t, 60000, profile.Capital)
	assert.Equal(t, types.HoursSemi, profile.Hours)
	assert.Equal(t, types.SizeEither, profile.Size)
}

func TestProfileFromFlags_InvalidValues(t *testing.T) {
	defer func() {
		recInterests, recCapital, recHours, recSize = "", 0, "", ""
	}()

	recHours = "weekends"
	_, err := profileFromFlags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--hours")

	recHours = ""
	recSize = "medium"
	_, err = profileFromFlags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--size")

	recSize = ""
	recCapital = -1
	_, err = profileFromFlags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--capital")
}
