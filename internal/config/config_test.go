package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/llm"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ReadsFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"adzuna_app_id": "id",
		"adzuna_app_key": "key",
		"gemini_api_key": "gkey",
		"embedding_model": "text-embedding-004"
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "id", cfg.AdzunaAppID)
	assert.Equal(t, "key", cfg.AdzunaAppKey)
	assert.Equal(t, "gkey", cfg.GeminiAPIKey)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "not json")

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ADZUNA_APP_ID", "env-id")
	t.Setenv("ADZUNA_APP_KEY", "env-key")
	t.Setenv("GEMINI_API_KEY", "env-gkey")

	cfg := FromEnv()

	assert.Equal(t, "env-id", cfg.AdzunaAppID)
	assert.Equal(t, "env-key", cfg.AdzunaAppKey)
	assert.Equal(t, "env-gkey", cfg.GeminiAPIKey)
}

func TestValidate_PortRange(t *testing.T) {
	valid := Config{Port: 8080}
	assert.NoError(t, valid.Validate())

	invalid := Config{Port: 99999}
	assert.Error(t, invalid.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{AdzunaAppID: "explicit"}
	defaults := Config{AdzunaAppID: "default", AdzunaAppKey: "default-key", Port: 8080}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit", merged.AdzunaAppID)
	assert.Equal(t, "default-key", merged.AdzunaAppKey)
	assert.Equal(t, 8080, merged.Port)
}

func TestMergeWithDefaults_EmbeddingModelFallback(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, llm.DefaultEmbeddingModel, merged.EmbeddingModel)
}
