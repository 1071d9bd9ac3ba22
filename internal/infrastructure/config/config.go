package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Snapshot file the CLI reads its state from
	SnapshotPath string `env:"FINANZAS_SNAPSHOT" envDefault:"finanzas.json"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Report assembly
	ReportWorkers int `env:"REPORT_WORKERS" envDefault:"4"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
