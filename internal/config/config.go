// Package config loads server configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/paddockgames/loadout-api/internal/errors"
)

// Storage backend selectors
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the full server configuration. Every field has a workable
// default so a bare `loadout-api server` starts against local file
// storage.
type Config struct {
	// Port is the websocket listen port.
	Port int `env:"LOADOUT_API_PORT" envDefault:"8090"`

	// StorageBackend selects where loadout bundles persist: "file" or
	// "redis".
	StorageBackend string `env:"LOADOUT_API_STORAGE" envDefault:"file"`

	// StorageRoot is the profile directory for the file backend.
	StorageRoot string `env:"LOADOUT_API_STORAGE_ROOT" envDefault:".PQD_SavedLoadouts"`

	// RedisAddress is the redis endpoint for the redis backend.
	RedisAddress string `env:"LOADOUT_API_REDIS_ADDRESS" envDefault:"localhost:6379"`

	// RedisPassword is optional; empty means no AUTH.
	RedisPassword string `env:"LOADOUT_API_REDIS_PASSWORD"`

	// SuppliesEnabled toggles the supply economy. When false every
	// storage action is free.
	SuppliesEnabled bool `env:"LOADOUT_API_SUPPLIES_ENABLED" envDefault:"true"`

	// BuyMultiplier scales catalog prices when charging for items.
	BuyMultiplier float64 `env:"LOADOUT_API_BUY_MULTIPLIER" envDefault:"1.0"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOADOUT_API_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.InvalidField("port", "must be between 1 and 65535")
	}

	switch c.StorageBackend {
	case BackendFile:
		if c.StorageRoot == "" {
			vb.InvalidField("storage_root", "is required for the file backend")
		}
	case BackendRedis:
		if c.RedisAddress == "" {
			vb.InvalidField("redis_address", "is required for the redis backend")
		}
	default:
		vb.InvalidField("storage_backend", "must be \"file\" or \"redis\"")
	}

	if c.BuyMultiplier < 0 {
		vb.InvalidField("buy_multiplier", "must not be negative")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		vb.InvalidField("log_level", "must be one of debug, info, warn, error")
	}

	return vb.Build()
}
