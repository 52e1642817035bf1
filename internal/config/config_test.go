package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "users.db", cfg.SQLitePath)
	assert.Equal(t, ModeToken, cfg.AuthMode)
	assert.Equal(t, time.Hour, cfg.CredentialTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadPostgresRequiresURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadTokenModeRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadSessionModeNeedsNoSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_MODE", "session")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeSession, cfg.AuthMode)
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9999")
	t.Setenv("CREDENTIAL_TTL", "90s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5002,http://127.0.0.1:5002")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTPAddress())
	assert.Equal(t, 90*time.Second, cfg.CredentialTTL)
	assert.Equal(t, []string{"http://localhost:5002", "http://127.0.0.1:5002"}, cfg.CORSOrigins)
}
