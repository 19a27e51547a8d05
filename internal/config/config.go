// Package config loads runtime configuration from environment variables
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/beholdr/grimoire/internal/errors"
)

// Config is the runtime configuration for the grimoire CLI
type Config struct {
	// Platform selects the storage backend: "fs" or "kv"
	Platform string `env:"GRIMOIRE_PLATFORM" envDefault:"fs"`

	// DataDir is the fs backend's application data directory
	DataDir string `env:"GRIMOIRE_DATA_DIR" envDefault:"./data"`

	// RedisEndpoint is the kv backend's store address
	RedisEndpoint string `env:"GRIMOIRE_REDIS_ENDPOINT" envDefault:"localhost:6379"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"GRIMOIRE_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
