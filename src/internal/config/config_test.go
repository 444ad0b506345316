package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relief.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, Validate(&cfg))
}

func TestLoadFromPath(t *testing.T) {
	path := writeFile(t, `
server:
  port: "9090"
  requestTimeout: 3s
store:
  backend: redis
  redisAddr: cache:6379
  redisPrefix: "hub:"
log:
  level: debug
  format: console
`)
	t.Setenv("PORT", "")
	t.Setenv("STORE_BACKEND", "")

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout, "unset keys keep defaults")
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "cache:6379", cfg.Store.RedisAddr)
	assert.Equal(t, "hub:", cfg.Store.RedisPrefix)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromPath_Invalid(t *testing.T) {
	_, err := LoadFromPath(writeFile(t, "store:\n  backend: etcd\n"))
	assert.ErrorContains(t, err, "config validation failed")

	_, err = LoadFromPath(writeFile(t, "store:\n  backend: postgres\n"))
	assert.Error(t, err, "postgres requires a DSN")

	_, err = LoadFromPath(writeFile(t, "server: [not, a, map]\n"))
	assert.ErrorContains(t, err, "failed to parse config file")

	_, err = LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "store:\n  backend: memory\nlog:\n  level: warn\n")
	t.Setenv("RELIEF_CONFIG", path)
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/relief?sslmode=disable")
	t.Setenv("DB_CONNECT_ATTEMPTS", "not-a-number")
	t.Setenv("PORT", "8181")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, "postgres://u:p@db:5432/relief?sslmode=disable", cfg.Store.PostgresDSN)
	assert.Equal(t, 15, cfg.Store.ConnectAttempts)
	assert.Equal(t, "8181", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFromPath_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "server:\n  port: \"9090\"\nlog:\n  level: warn\n")
	t.Setenv("RELIEF_CONFIG", "")
	t.Setenv("PORT", "7070")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFromPath_EmptyPathUsesEnv(t *testing.T) {
	t.Setenv("PORT", "6060")

	cfg, err := LoadFromPath("")

	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.Server.Port)
}
