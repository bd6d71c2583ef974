package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	assert.Equal(t, "inventario.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.DashboardRefreshInterval)
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"api_base_url":               "https://inv.example.com/api",
		"database_path":              "/tmp/inv.db",
		"dashboard_refresh_interval": "10s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "https://inv.example.com/api", cfg.APIBaseURL)
		assert.Equal(t, "/tmp/inv.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Second, cfg.DashboardRefreshInterval)
	})

	t.Run("no config flag keeps existing values", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			APIBaseURL:               "defaults:1234",
			DashboardRefreshInterval: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.DashboardRefreshInterval)
	})

	t.Run("partial file keeps untouched fields", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{
			"api_base_url": "https://other.example.com",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://other.example.com", cfg.APIBaseURL)
		assert.Equal(t, "inventario.db", cfg.DatabasePath)
		assert.Equal(t, 30*time.Second, cfg.DashboardRefreshInterval)
	})
}

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", "https://flag.example.com", "-i", "5"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.DashboardRefreshInterval)
	assert.Equal(t, "inventario.db", cfg.DatabasePath)
}
