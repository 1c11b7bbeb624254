package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Upstream
	BaseURL        string
	UserAgent      string
	RespectRobots  bool
	DelayProfile   string // "cautious", "normal", "aggressive", "none"
	RatePerSecond  float64
	RateBurst      int
	MaxConcurrent  int
	RequestTimeout time.Duration

	// Servers
	HTTPPort string // MCP streamable HTTP
	APIPort  string // REST API
	APIKey   string

	// Logging
	LogLevel string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://arkhamcentral.com",
		UserAgent:      "arkham-central-mcp/1.0 (+https://github.com/dunwich/arkham-central-mcp)",
		RespectRobots:  true,
		DelayProfile:   "normal",
		RatePerSecond:  1.0,
		RateBurst:      2,
		MaxConcurrent:  4,
		RequestTimeout: 30 * time.Second,
		HTTPPort:       "8080",
		APIPort:        "8000",
		LogLevel:       "info",
	}
}

// LoadFromEnv loads .env (if present) then overrides config from
// environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("ARKHAM_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("ARKHAM_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("ARKHAM_RESPECT_ROBOTS"); v == "false" {
		c.RespectRobots = false
	}
	if v := os.Getenv("ARKHAM_DELAY_PROFILE"); v != "" {
		c.DelayProfile = v
	}
	if v := os.Getenv("ARKHAM_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("ARKHAM_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("ARKHAM_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxConcurrent = n
		}
	}
	if v := os.Getenv("ARKHAM_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("ARKHAM_API_PORT"); v != "" {
		c.APIPort = v
	}
	if v := os.Getenv("ARKHAM_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("ARKHAM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
