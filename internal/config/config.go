package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage driver and auth mode values accepted by Load.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	ModeToken   = "token"
	ModeSession = "session"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	StorageDriver string        `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	SQLitePath    string        `env:"SQLITE_PATH" envDefault:"users.db"`
	AuthMode      string        `env:"AUTH_MODE" envDefault:"token"`
	JWTSecret     string        `env:"JWT_SECRET"`
	JWTIssuer     string        `env:"JWT_ISSUER" envDefault:"userauth-backend"`
	CredentialTTL time.Duration `env:"CREDENTIAL_TTL" envDefault:"3600s"`
	CORSOrigins   []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads configuration from the environment and performs minimal
// validation.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.StorageDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.StorageDriver == DriverPostgres && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required for the postgres driver")
	}

	switch cfg.AuthMode {
	case ModeToken, ModeSession:
	default:
		return Config{}, fmt.Errorf("unknown AUTH_MODE %q", cfg.AuthMode)
	}
	if cfg.AuthMode == ModeToken && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required in token mode")
	}
	if cfg.CredentialTTL <= 0 {
		return Config{}, fmt.Errorf("CREDENTIAL_TTL must be positive")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}
