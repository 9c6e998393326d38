package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_defaults(t *testing.T) {
	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100*time.Millisecond, cfg.LoopInterval)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.TLSEnabled())
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadServerConfig_overrides(t *testing.T) {
	t.Setenv("KOPFRECHNEN_PORT", "8081")
	t.Setenv("KOPFRECHNEN_DATABASE_URL", "sqlite://quiz.db")
	t.Setenv("KOPFRECHNEN_SESSION_TTL", "30m")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "sqlite://quiz.db", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadServerConfig_invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port not an int", key: "KOPFRECHNEN_PORT", value: "not-an-int"},
		{name: "port out of range", key: "KOPFRECHNEN_PORT", value: "70000"},
		{name: "unknown database", key: "KOPFRECHNEN_DATABASE_URL", value: "mysql://db"},
		{name: "half tls", key: "KOPFRECHNEN_TLS_CERT_FILE", value: "cert.pem"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadServerConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("KOPFRECHNEN_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("KOPFRECHNEN_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "loaded", os.Getenv("KOPFRECHNEN_TEST_DOTENV"))
}
