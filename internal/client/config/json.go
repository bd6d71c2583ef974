package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dcastanera/inventario/internal/flagx"
	"github.com/dcastanera/inventario/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL               string         `json:"api_base_url"`
	DatabasePath             string         `json:"database_path"`
	DashboardRefreshInterval timex.Duration `json:"dashboard_refresh_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; if absent, nothing is loaded.
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DashboardRefreshInterval.Duration != 0 {
		cfg.DashboardRefreshInterval = time.Duration(jc.DashboardRefreshInterval.Duration)
	}
}
