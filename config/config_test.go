package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeConfigFile(t, `
env:
  env: test
  serviceName: inmomarket
  debug: true
  log:
    level: debug
http:
  port: 8080
postgres:
  host: localhost
  port: 5432
  sslMode: disable
visits:
  minResponseDetailLength: 10
  completionInterval: 30m
`)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "inmomarket", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	require.NotNil(t, cfg.Visits)
	assert.Equal(t, 30*time.Minute, cfg.Visits.CompletionInterval)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	dir := writeConfigFile(t, `
postgres:
  host: localhost
  sslMode: disable
`)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_SSLMODE", "require")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	// Env segment aligns with the camelCase YAML key.
	assert.Equal(t, "require", cfg.Postgres.SSLMode)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"host":    "localhost",
		},
	}

	assert.Equal(t, "postgres.sslMode", canonicalizeEnvKey("POSTGRES_SSLMODE", existing))
	assert.Equal(t, "postgres.host", canonicalizeEnvKey("POSTGRES_HOST", existing))
	// Unknown segments fall back to lowercase passthrough.
	assert.Equal(t, "redis.addr", canonicalizeEnvKey("REDIS_ADDR", existing))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Visits)
	assert.Equal(t, 10, cfg.Visits.MinResponseDetailLength)
	assert.Equal(t, 15*time.Minute, cfg.Visits.CompletionInterval)
	assert.Equal(t, 200, cfg.Visits.CompletionBatchSize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	require.NotNil(t, cfg.Cache)
	assert.Equal(t, 5*time.Minute, cfg.Cache.PageTTL)
}
