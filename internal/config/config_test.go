package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{"dataset": "listings.csv", "top_k": 4, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "listings.csv", cfg.Dataset)
	assert.Equal(t, 4, cfg.TopK)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeTempConfig(t, `{"dataset": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{TopK: -1}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: 99999}
	assert.Error(t, cfg.Validate())

	cfg = Config{Dataset: filepath.Join(t.TempDir(), "absent.csv")}
	assert.Error(t, cfg.Validate())

	cfg = Config{TopK: 6, Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Dataset: "mine.csv"}
	defaults := Config{Dataset: "env.csv", APIKey: "key-from-env", TopK: 10}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.csv", merged.Dataset, "explicit value wins")
	assert.Equal(t, "key-from-env", merged.APIKey, "empty value filled from defaults")
	assert.Equal(t, 10, merged.TopK)
}

func TestMergeWithDefaults_TopKFallsBackToBuiltin(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultTopK, merged.TopK)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("ADVISOR_DATASET", "d.csv")
	t.Setenv("ADVISOR_TOP_K", "3")
	t.Setenv("PORT", "9090")

	cfg := FromEnv()
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "d.csv", cfg.Dataset)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, 9090, cfg.Port)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("ADVISOR_JWT_SECRET", "")
	t.Setenv("ADVISOR_JWT_EXPIRATION_HOURS", "")

	_, err := NewJWTConfig()
	assert.Error(t, err, "secret is required")

	t.Setenv("ADVISOR_JWT_SECRET", "super-secret")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.ExpirationHours)

	t.Setenv("ADVISOR_JWT_EXPIRATION_HOURS", "not-a-number")
	_, err = NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("ADVISOR_JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}
