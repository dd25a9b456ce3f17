package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shoplist-backend", cfg.AppName)
	assert.Equal(t, "./data/shopping.db", cfg.Storage.Path)
	assert.Equal(t, "shopping", cfg.Storage.Bucket)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BOLTDB_PATH", "/tmp/custom.db")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "30")
	t.Setenv("LOG_ENCODING", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "/tmp/custom.db", cfg.Storage.Path)
	assert.Equal(t, 30*time.Second, cfg.Context.ShutdownTimeout)
	assert.Equal(t, "console", cfg.Logger.Encoding)
}
