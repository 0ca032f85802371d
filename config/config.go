package config

import (
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
		// Migrate applies pending migrations on startup.
		Migrate bool
		// LogQueries logs every SQL statement at debug level.
		LogQueries bool
	}
	Auth struct {
		Secret   string
		TokenTTL time.Duration
	}
}

// SetDatabaseURL replaces the connection settings with the ones parsed from a
// postgres:// URL. Pool settings from the file are kept.
func (c *Config) SetDatabaseURL(url string) error {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.PoolSize = c.Database.PoolSize
	opt.MaxRetries = c.Database.MaxRetries
	opt.MaxConnAge = c.Database.MaxConnAge
	c.Database = *opt

	return nil
}

// Validate fills defaults and rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = time.Hour
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth secret is required")
	}

	return nil
}
