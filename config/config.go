package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"bankist/internal/http"
	"bankist/internal/session"
	"bankist/internal/sqlite"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	LogLevel int    `envconfig:"LOG_LEVEL" default:"-4"`
	Store    string `envconfig:"STORE" default:"memory"`
	SeedFile string `envconfig:"SEED_FILE"` // Built-in demo accounts when empty
	Session  session.Config
	Database sqlite.Config
	HTTP     http.Config
}

func Load() (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	if config.Store != StoreMemory && config.Store != StoreSQLite {
		return Config{}, fmt.Errorf("unknown STORE %q, want %q or %q", config.Store, StoreMemory, StoreSQLite)
	}

	if config.Session.IdleTimeout < time.Second {
		return Config{}, fmt.Errorf("IDLE_TIMEOUT must be at least one second, got %s", config.Session.IdleTimeout)
	}

	return config, nil
}
