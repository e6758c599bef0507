package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, int32(16), cfg.MaxDBConns)
	assert.Equal(t, "web/templates/*.html", cfg.TemplateGlob)
	assert.Equal(t, 30, cfg.WriteRateLimit)
	assert.Equal(t, time.Minute, cfg.WriteRateWindow)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_DB_CONNS", "4")
	t.Setenv("WRITE_RATE_LIMIT", "5")
	t.Setenv("WRITE_RATE_WINDOW_SECONDS", "30")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int32(4), cfg.MaxDBConns)
	assert.Equal(t, 5, cfg.WriteRateLimit)
	assert.Equal(t, 30*time.Second, cfg.WriteRateWindow)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("MAX_DB_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, int32(16), cfg.MaxDBConns)
}
