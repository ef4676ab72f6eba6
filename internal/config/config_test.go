package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8090", cfg.HTTPAddr)
	assert.Equal(t, "http://localhost:5000", cfg.BackendURL)
	assert.Equal(t, 15*time.Second, cfg.CacheTTLList)
	assert.True(t, cfg.RLEnabled)
	assert.Equal(t, 120, cfg.RLLimit)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Second, cfg.BackendReadTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://campus-api:9000")
	t.Setenv("RL_IP_LIMIT", "30")
	t.Setenv("RL_IP_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "https://portal.campus.edu,https://staging.campus.edu")

	cfg := Load()

	assert.Equal(t, "http://campus-api:9000", cfg.BackendURL)
	assert.Equal(t, 30, cfg.RLLimit)
	assert.Equal(t, 30*time.Second, cfg.RLWindow)
	assert.Equal(t, []string{"https://portal.campus.edu", "https://staging.campus.edu"}, cfg.CORSOrigins)
}

func TestBadValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("RL_IP_LIMIT", "not-a-number")
	t.Setenv("CACHE_TTL_LIST", "soon")

	cfg := Load()

	assert.Equal(t, 120, cfg.RLLimit)
	assert.Equal(t, 15*time.Second, cfg.CacheTTLList)
}
