package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
	assert.Equal(t, 14, cfg.Session.SnapshotLimit)
	assert.Equal(t, "ads_session", cfg.Session.CookieName)
	assert.Equal(t, "8000", cfg.Server.Port)
}
