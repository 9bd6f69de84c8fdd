package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
}

// Load reads the TOML configuration file and applies optional overrides
// coming from flags/environment. An empty databaseURL keeps the file values.
func Load(path, databaseURL string, dbMaxConns int, dbMaxConnLifetime string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file %q: %w", path, err)
	}

	if databaseURL != "" {
		opt, err := pg.ParseURL(databaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse database URL: %w", err)
		}
		cfg.Database = *opt
	}

	cfg.Database.MaxRetries = 3
	if dbMaxConns > 0 {
		cfg.Database.PoolSize = dbMaxConns
	}

	if dbMaxConnLifetime != "" {
		lifetime, err := time.ParseDuration(dbMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("parse db-max-conn-lifetime: %w", err)
		}
		cfg.Database.MaxConnAge = lifetime
	}

	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}

	return &cfg, nil
}
