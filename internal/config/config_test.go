package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
port: "9000"
databaseURL: postgres://localhost/jobmarket
jwtSecret: file-secret
tokenTTL: 2h
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://localhost/jobmarket", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "development", cfg.Environment)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
port: "9000"
databaseURL: postgres://localhost/jobmarket
jwtSecret: file-secret
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	t.Setenv("PORT", "9100")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load("")
	require.Error(t, err)
}
