// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/llm"
)

// Config represents the service configuration. Values come from a JSON file,
// environment variables, or CLI flags; later sources win.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Adzuna job search
	AdzunaAppID  string `json:"adzuna_app_id,omitempty"`
	AdzunaAppKey string `json:"adzuna_app_key,omitempty"`

	// Gemini embeddings
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Emit debug-level logs
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

// FromEnv builds a Config from environment variables. Call after godotenv
// has loaded .env so both sources are visible.
func FromEnv() Config {
	return Config{
		AdzunaAppID:    os.Getenv("ADZUNA_APP_ID"),
		AdzunaAppKey:   os.Getenv("ADZUNA_APP_KEY"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel: os.Getenv("EMBEDDING_MODEL"),
	}
}

// Validate checks that the configuration has valid values.
// Credential presence is checked where the feature is used, not here, so
// the scoring-only CLI works without any API keys.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.AdzunaAppID == "" {
		result.AdzunaAppID = defaults.AdzunaAppID
	}
	if result.AdzunaAppKey == "" {
		result.AdzunaAppKey = defaults.AdzunaAppKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = llm.DefaultEmbeddingModel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
