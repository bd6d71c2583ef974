// Package config loads runtime settings for the inventario CLI client.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: base URL of the backend JSON API.
//   - DatabasePath: path of the local sqlite database (token storage).
//   - DashboardRefreshInterval: how often the dashboard is refetched.
type Config struct {
	APIBaseURL               string
	DatabasePath             string
	DashboardRefreshInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.DatabasePath = "inventario.db"
	c.DashboardRefreshInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
