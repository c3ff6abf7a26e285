package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 22, cfg.SFTP.Port)
	assert.Equal(t, "/", cfg.SFTP.RemoteDir)
	assert.Empty(t, cfg.SFTP.Host)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SFTP_HOST", "drop.example.edu")
	t.Setenv("SFTP_PORT", "2222")
	t.Setenv("SFTP_USER", "reports")
	t.Setenv("SFTP_DIR", "/incoming")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "drop.example.edu", cfg.SFTP.Host)
	assert.Equal(t, 2222, cfg.SFTP.Port)
	assert.Equal(t, "reports", cfg.SFTP.User)
	assert.Equal(t, "/incoming", cfg.SFTP.RemoteDir)
}
