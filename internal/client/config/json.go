package config

import (
	"encoding/json"
	"os"

	"github.com/nmorozova/lovebird/internal/flagx"
	"github.com/nmorozova/lovebird/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. When no file is given the function is a no-op. Read or
// unmarshal errors panic; LoadConfig runs before any state exists, so
// failing loudly beats running with a half-applied config.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
