package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_REMOTE", " Mongo ")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example.com,https://cms.example.com")
	t.Setenv("REMOTE_SYNC_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.CatalogRemote)
	assert.Equal(t, []string{"https://shop.example.com", "https://cms.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.RemoteSyncTimeout)
	assert.Equal(t, 5, cfg.MinPerCategory)
	assert.False(t, cfg.IsProduction())
	assert.Same(t, cfg, Get())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "forever")

	_, err := Load()
	assert.Error(t, err)
}
