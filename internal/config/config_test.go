package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "portfolio-rebalancer/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Data.BasePath)
	assert.Equal(t, "data/market_data/customer_accounts.csv", cfg.Data.AccountsFile)
	assert.False(t, cfg.Filter.StrictAttributes)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Sentiment.MaxAttempts)

	// First run writes the templates for editing.
	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "credentials.toml"))
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[data]
base_path = "/srv/rebalance"

[filter]
strict_attributes = true

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/rebalance", cfg.Data.BasePath)
	assert.True(t, cfg.Filter.StrictAttributes)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset values keep defaults.
	assert.Equal(t, "output", cfg.Data.OutputDir)
}

func TestLoadInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	content := `
[logging]
level = "loud"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, apperrors.ErrConfigInvalid)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REBALANCER_DATA_PATH", "/data/live")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Credentials.OpenAI.APIKey)
	assert.Equal(t, "/data/live", cfg.Data.BasePath)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	dc := DataConfig{BasePath: "/srv"}
	assert.Equal(t, filepath.Join("/srv", "data/x.csv"), dc.Resolve("data/x.csv"))
	assert.Equal(t, "/abs/x.csv", dc.Resolve("/abs/x.csv"))
}
