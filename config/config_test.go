package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOPLENS_OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "https://api.openai.com", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "data/products.json", cfg.Catalog.Path)
	assert.Equal(t, "Hisense", cfg.Catalog.DefaultBrand)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHOPLENS_OPENAI_API_KEY", "sk-test")
	t.Setenv("SHOPLENS_SERVER_PORT", "8080")
	t.Setenv("SHOPLENS_SERVER_ENVIRONMENT", "production")
	t.Setenv("SHOPLENS_OPENAI_MODEL", "gpt-4o")
	t.Setenv("SHOPLENS_CATALOG_DEFAULT_BRAND", "Toshiba")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "Toshiba", cfg.Catalog.DefaultBrand)
}

func TestLoadBareAPIKeyAlias(t *testing.T) {
	t.Setenv("SHOPLENS_OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-bare")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-bare", cfg.OpenAI.APIKey)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("SHOPLENS_OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
