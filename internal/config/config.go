// Package config loads tracker settings from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

// Store names the storage medium backing the tracker
type Store string

// Supported stores
const (
	StoreMemory Store = "memory"
	StoreRedis  Store = "redis"
	StoreFile   Store = "file"
	StoreSQLite Store = "sqlite"
)

// Stores lists every supported store
var Stores = []string{string(StoreMemory), string(StoreRedis), string(StoreFile), string(StoreSQLite)}

// Config is the environment-derived tracker configuration. Flags on the CLI
// override these values.
type Config struct {
	Store Store `env:"TRACKER_STORE" envDefault:"file"`

	RedisAddr      string        `env:"TRACKER_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string        `env:"TRACKER_REDIS_PASSWORD"`
	RedisKeyPrefix string        `env:"TRACKER_REDIS_PREFIX" envDefault:"tracker:"`
	RedisTTL       time.Duration `env:"TRACKER_REDIS_TTL"`

	// FilePath overrides the TOML medium location; empty keeps its default
	FilePath   string `env:"TRACKER_FILE_PATH"`
	SQLitePath string `env:"TRACKER_SQLITE_PATH" envDefault:"combat-tracker.db"`

	// MemoryQuota caps a single value in the memory store, 0 for no cap
	MemoryQuota int `env:"TRACKER_MEMORY_QUOTA"`

	BaseURL      string `env:"TRACKER_BASE_URL" envDefault:"https://tracker.example/"`
	DND5eBaseURL string `env:"TRACKER_DND5E_BASE_URL" envDefault:"https://www.dnd5eapi.co/api/"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the store selection and the settings it needs
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("TRACKER_STORE", string(c.Store), Stores, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("TRACKER_REDIS_ADDR", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("TRACKER_SQLITE_PATH", c.SQLitePath, vb)
	}
	if c.MemoryQuota < 0 {
		vb.Field("TRACKER_MEMORY_QUOTA", "must not be negative")
	}
	if c.RedisTTL < 0 {
		vb.Field("TRACKER_REDIS_TTL", "must not be negative")
	}

	return vb.Build()
}
