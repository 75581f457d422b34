// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Turab-IE/Calcu-App/internal/engine"
)

// Config is the API process configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"CALC_API_ADDR" envDefault:":8080"`

	// DefaultPrecision is the number of result decimals applied when a
	// request does not ask for a specific precision.
	DefaultPrecision int `env:"CALC_API_DEFAULT_PRECISION" envDefault:"6"`

	// SessionTTL retires sessions idle longer than this; zero disables
	// expiry and keeps every session for the life of the process.
	SessionTTL time.Duration `env:"CALC_API_SESSION_TTL" envDefault:"30m"`

	// SessionSweepInterval is how often the expiry sweep runs.
	SessionSweepInterval time.Duration `env:"CALC_API_SESSION_SWEEP_INTERVAL" envDefault:"5m"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DefaultPrecision < 0 || cfg.DefaultPrecision > engine.MaxPrecision {
		return Config{}, fmt.Errorf("default precision %d out of range 0-%d",
			cfg.DefaultPrecision, engine.MaxPrecision)
	}

	return cfg, nil
}
