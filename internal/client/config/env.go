package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig maps environment variables onto config fields.
type envConfig struct {
	APIBaseURL     string        `env:"LOVEBIRD_API_URL"`
	RequestTimeout time.Duration `env:"LOVEBIRD_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"LOVEBIRD_DB_PATH"`
}

// parseEnv overlays cfg with any environment variables that are set.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
}
