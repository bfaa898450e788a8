package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("DATABASE_PATH", "")

	cfg := Load()
	require.Equal(t, "dev_secret", cfg.SessionSecret)
	require.Equal(t, "8080", cfg.HTTPPort)
	require.Equal(t, "warehouse.db", cfg.DatabaseDSN)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DSN", "/data/depot.db")

	cfg := Load()
	require.Equal(t, "s3cret", cfg.SessionSecret)
	require.Equal(t, "9090", cfg.HTTPPort)
	require.Equal(t, "/data/depot.db", cfg.DatabaseDSN)
}

func TestLoadRejectsNonNumericPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	cfg := Load()
	require.Equal(t, "8080", cfg.HTTPPort)
}

func TestLoadFallsBackToDatabasePath(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("DATABASE_PATH", "legacy.db")

	cfg := Load()
	require.Equal(t, "legacy.db", cfg.DatabaseDSN)
}
