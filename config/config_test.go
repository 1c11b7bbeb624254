package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, "https://arkhamcentral.com", c.BaseURL)
	assert.True(t, c.RespectRobots)
	assert.Equal(t, "normal", c.DelayProfile)
	assert.Equal(t, "8080", c.HTTPPort)
	assert.Equal(t, "8000", c.APIPort)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ARKHAM_BASE_URL", "http://localhost:9999")
	t.Setenv("ARKHAM_RESPECT_ROBOTS", "false")
	t.Setenv("ARKHAM_RATE_PER_SECOND", "0.5")
	t.Setenv("ARKHAM_REQUEST_TIMEOUT", "10s")
	t.Setenv("PORT", "3000")

	c := DefaultConfig()
	c.LoadFromEnv()

	assert.Equal(t, "http://localhost:9999", c.BaseURL)
	assert.False(t, c.RespectRobots)
	assert.Equal(t, 0.5, c.RatePerSecond)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "3000", c.HTTPPort)
}

func TestLoadFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("ARKHAM_RATE_PER_SECOND", "not-a-number")
	t.Setenv("ARKHAM_REQUEST_TIMEOUT", "soon")

	c := DefaultConfig()
	c.LoadFromEnv()

	assert.Equal(t, 1.0, c.RatePerSecond)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}
