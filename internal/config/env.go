package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CHESSRULES_"

// LoadEnv overlays settings from environment variables onto cfg.
// Variables that are not set leave the current value in place.
func LoadEnv(cfg *Config) error {
	return loadEnv(cfg, nil)
}

// loadEnv is LoadEnv with an explicit environment, for tests.
func loadEnv(cfg *Config, environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&cfg.Settings, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
