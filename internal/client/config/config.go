// Package config assembles runtime settings for the Lovebird CLI.
//
// Sources are applied in order, later ones winning:
// built-in defaults, a JSON config file, environment variables, flags.
package config

import "time"

// Config holds runtime settings for the Lovebird CLI.
type Config struct {
	// APIBaseURL is the base URL of the backend REST API.
	APIBaseURL string

	// RequestTimeout bounds every network round trip.
	RequestTimeout time.Duration

	// DatabasePath is the sqlite file holding persisted credentials.
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8888"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "lovebird.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
