package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "")
}

func TestLoad_YAMLWithDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
postgres:
  dsn: postgres://u:p@db:5432/app
  maxConns: 4
http:
  readTimeout: 3s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":3333", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "rooms-api", cfg.Logging.Service)
	assert.Equal(t, "std", cfg.Logging.Backend)
	assert.Equal(t, 5, cfg.Seed.Rooms)
	assert.Equal(t, 20, cfg.Seed.Questions)

	pg := cfg.Postgres.ToPGConfig()
	assert.Equal(t, "postgres://u:p@db:5432/app", pg.DSN)
	assert.EqualValues(t, 4, pg.MaxConns)
	assert.Equal(t, "rooms-api", pg.ApplicationName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	path := writeConfig(t, `
http:
  addr: ":9999"
postgres:
  dsn: postgres://file/db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.HTTP.Addr)
	assert.Equal(t, "postgres://env/db", cfg.Postgres.DSN)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", cfg.Postgres.DSN)
}

func TestLoad_RequiresDSN(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "http:\n  addr: \":1\"\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "postgres.dsn is required")
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "http: [")

	_, err := Load(path)
	assert.ErrorContains(t, err, "unmarshal yaml")
}
