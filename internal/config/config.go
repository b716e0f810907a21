package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. All values come
// from environment variables; there is deliberately no config file support.
// Explicit CLI flags always take precedence — these values only move the flag
// defaults.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	// and selects console vs JSON log output.
	Environment string `env:"LOGSWEEP_ENVIRONMENT" env-default:"development"`

	// Days is the default age threshold applied when --days is not given.
	Days int `env:"LOGSWEEP_DAYS" env-default:"30"`

	// Pattern is the default filename glob applied when --pattern is not given.
	Pattern string `env:"LOGSWEEP_PATTERN" env-default:"*.log"`
}

// Load reads configuration from the process environment and returns a filled
// Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment config: %w", err)
	}

	return &cfg, nil
}
