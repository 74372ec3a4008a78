package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"DATABASE_URL", "APP_NAME", "DEBUG", "JWT_SECRET", "SERVER_PORT",
	"SERVER_HOST", "RULES_FILE", "SESSION_FILE", "TICK_MS",
}

// unsetEnv clears keys for the test and restores them afterwards, including
// anything godotenv sets while the test runs.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeEnv(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		DatabaseURL: "sqlite3://blockfall.db",
		AppName:     "BlockFall",
		JWTSecret:   "secret",
		ServerPort:  8080,
		ServerHost:  "localhost",
		RulesFile:   "games/blockfall/blockfall.lua",
		SessionFile: ".blockfall_session",
		TickPeriod:  50 * time.Millisecond,
	}, cfg)
	assert.Equal(t, "localhost:8080", cfg.Addr())
}

func TestLoadFromEnvFile(t *testing.T) {
	unsetEnv(t, allKeys...)
	path := writeEnv(t,
		"DATABASE_URL=postgres://u:p@db:5432/blockfall",
		"DEBUG=true",
		"SERVER_PORT=9090",
		"SERVER_HOST=0.0.0.0",
		"TICK_MS=20",
		"JWT_SECRET=from-file",
	)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/blockfall", cfg.DatabaseURL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, 20*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, "from-file", cfg.JWTSecret)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("SERVER_PORT", "7000")
	path := writeEnv(t, "SERVER_PORT=9090", "JWT_SECRET=x")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.ServerPort)
}

func TestMalformedValuesFallBack(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("DEBUG", "maybe")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.False(t, cfg.Debug)
}

func TestNonPositiveTick(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("TICK_MS", "0")

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "TICK_MS")
}

func TestMissingSecretIsGenerated(t *testing.T) {
	unsetEnv(t, allKeys...)
	path := filepath.Join(t.TempDir(), ".env")

	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrSecretGenerated)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "JWT_SECRET=")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	key, err := base64.StdEncoding.DecodeString(cfg.JWTSecret)
	require.NoError(t, err)
	assert.Len(t, key, 32)
}
