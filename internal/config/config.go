// Package config provides centralized configuration management for the
// importer. It loads settings from environment variables with sensible
// defaults and validates them on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all importer configuration.
// All settings can be configured via environment variables.
type Config struct {
	API      APIConfig
	Paths    PathsConfig
	Database DatabaseConfig
	Import   ImportConfig
	Logging  LoggingConfig
}

// APIConfig holds the dump provider's credential and endpoint settings.
type APIConfig struct {
	// ClientID is the Twitch application client id used for both the token
	// exchange and dump requests. Required for fetching.
	ClientID string `env:"IGDB_CLIENT_ID"`

	// ClientSecret is the Twitch application client secret. Required for fetching.
	ClientSecret string `env:"IGDB_CLIENT_SECRET"`

	// BaseURL is the dump manifest endpoint prefix.
	BaseURL string `env:"IGDB_BASE_URL" default:"https://api.igdb.com/v4/dumps/"`

	// TokenURL is the OAuth client-credentials token endpoint.
	TokenURL string `env:"IGDB_TOKEN_URL" default:"https://id.twitch.tv/oauth2/token"`

	// Timeout bounds each HTTP call, including the payload download (default: 5m).
	Timeout time.Duration `env:"IGDB_HTTP_TIMEOUT" default:"5m"`
}

// PathsConfig holds local filesystem settings.
type PathsConfig struct {
	// DownloadDir is where dump payloads are written and read (default: ./dumps)
	DownloadDir string `env:"DOWNLOAD_DIR" default:"./dumps"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string. Required for importing.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility.
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 4).
	// The importer is a single sequential writer; it never needs many.
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of connections to keep open (default: 1)
	MinConns int `env:"DB_MIN_CONNS" default:"1"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// ImportConfig holds pipeline settings.
type ImportConfig struct {
	// BatchSize is the number of rows per upsert statement (default: 5000).
	// Batching bounds statement size only; merge semantics are unaffected.
	BatchSize int `env:"IMPORT_BATCH_SIZE" default:"5000"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks that the configuration is internally consistent. Presence
// of credentials and the database URL is checked per-command instead, since
// fetch-only runs need no database and offline runs need no credentials.
func (c *Config) Validate() error {
	var errs []string

	if c.Paths.DownloadDir == "" {
		errs = append(errs, "DOWNLOAD_DIR must not be empty")
	}

	if c.Database.MaxConns <= 0 {
		errs = append(errs, "DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns < 0 {
		errs = append(errs, "DB_MIN_CONNS must be non-negative")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS (%d) must be >= DB_MIN_CONNS (%d)",
			c.Database.MaxConns, c.Database.MinConns))
	}

	if c.Import.BatchSize <= 0 {
		errs = append(errs, "IMPORT_BATCH_SIZE must be positive")
	}

	if c.API.Timeout <= 0 {
		errs = append(errs, "IGDB_HTTP_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// RequireAPI verifies that credential settings for fetching are present.
func (c *Config) RequireAPI() error {
	if c.API.ClientID == "" || c.API.ClientSecret == "" {
		return fmt.Errorf("IGDB_CLIENT_ID and IGDB_CLIENT_SECRET are required to fetch dumps")
	}
	return nil
}

// RequireDatabase verifies that the store connection string is present.
func (c *Config) RequireDatabase() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required to import")
	}
	return nil
}

// String returns a safe string representation of the config for logging.
// Credentials and the database URL are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("API: {ClientID: [MASKED], BaseURL: %q}, ", c.API.BaseURL))
	b.WriteString(fmt.Sprintf("Paths: {DownloadDir: %q}, ", c.Paths.DownloadDir))
	b.WriteString(fmt.Sprintf("Database: {URL: [MASKED], MaxConns: %d, MinConns: %d}, ",
		c.Database.MaxConns, c.Database.MinConns))
	b.WriteString(fmt.Sprintf("Import: {BatchSize: %d}, ", c.Import.BatchSize))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
