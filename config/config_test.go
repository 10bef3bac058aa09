package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.cineamo.com", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.Defaults.PerPage)
	assert.Equal(t, "table", cfg.Defaults.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  base_url: https://staging.cineamo.example
  timeout: 5s
defaults:
  per_page: 25
  format: json
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.cineamo.example", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 25, cfg.Defaults.PerPage)
	assert.Equal(t, "json", cfg.Defaults.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "bad logging level",
			content: "logging:\n  level: chatty\n",
			errMsg:  "invalid logging level",
		},
		{
			name:    "bad logging format",
			content: "logging:\n  format: xml\n",
			errMsg:  "invalid logging format",
		},
		{
			name:    "bad output format",
			content: "defaults:\n  format: csv\n",
			errMsg:  "invalid output format",
		},
		{
			name:    "zero per_page",
			content: "defaults:\n  per_page: 0\n",
			errMsg:  "per_page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, Set(path, "api.base_url", "https://other.example"))
	require.NoError(t, Set(path, "defaults.format", "json"))

	got, err := Get(path, "api.base_url")
	require.NoError(t, err)
	assert.Equal(t, "https://other.example", got)

	// The second Set must not clobber the first key.
	got, err = Get(path, "defaults.format")
	require.NoError(t, err)
	assert.Equal(t, "json", got)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://other.example", cfg.API.BaseURL)
	assert.Equal(t, "json", cfg.Defaults.Format)
}

func TestGetMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://x.example\n"), 0o644))

	got, err := Get(path, "no.such.key")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestAllIncludesDefaults(t *testing.T) {
	settings, err := All(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	api, ok := settings["api"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://api.cineamo.com", api["base_url"])
}
