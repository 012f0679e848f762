package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"bonfire/internal/storage"
)

// Config holds process configuration, loaded from environment variables.
type Config struct {
	// DBPath overrides the save-file location (default ~/.bonfire.db).
	DBPath string `env:"BONFIRE_DB"`
	// Telemetry enables the OTLP trace exporter.
	Telemetry bool `env:"BONFIRE_TELEMETRY"`
}

// FromEnv loads configuration from environment variables, filling the default
// DB path when unset.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}
