// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultTopK is how many matching franchises a recommendation presents.
const DefaultTopK = 6

// Config represents the advisor configuration that can be loaded from a JSON
// file. All fields are optional; missing values fall back to environment
// variables and then to defaults.
type Config struct {
	// Paths
	Dataset string `json:"dataset,omitempty"` // Path to the franchise listings CSV

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Model override for response composition
	TopK        int    `json:"top_k,omitempty"`        // Maximum franchises per recommendation
	Verbose     bool   `json:"verbose,omitempty"`      // Print profile and filter traces
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (listings store)
	Port        int    `json:"port,omitempty"`         // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. These are the defaults
// that a config file or CLI flags can override.
func FromEnv() Config {
	cfg := Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Dataset:     os.Getenv("ADVISOR_DATASET"),
		Model:       os.Getenv("ADVISOR_MODEL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if v := os.Getenv("ADVISOR_TOP_K"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopK = n
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}

	return cfg
}

// Validate checks that the configuration has valid values.
// Note: required-field checks happen at the command layer after merging,
// since flags can still supply them.
func (c *Config) Validate() error {
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.Dataset != "" {
		if _, err := os.Stat(c.Dataset); os.IsNotExist(err) {
			return fmt.Errorf("config error: dataset file not found: %s", c.Dataset)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply env or config-file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Dataset == "" {
		result.Dataset = defaults.Dataset
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.TopK == 0 {
		if defaults.TopK > 0 {
			result.TopK = defaults.TopK
		} else {
			result.TopK = DefaultTopK
		}
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
