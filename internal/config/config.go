// Package config loads the proxy configuration from the environment.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the proxy configuration, populated from AOE4PROXY_*
// environment variables.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `default:":8080"`

	// BaseURL is the aoe4world API root requests are forwarded to.
	BaseURL string `envconfig:"BASE_URL" default:"https://aoe4world.com/api/v0"`

	// UserAgent identifies this proxy to the upstream API.
	UserAgent string `envconfig:"USER_AGENT" default:"aoe4world-proxy/1.0 (github.com/Sternrassler/aoe4world-client)"`

	// RedisURL selects a shared Redis cache backend. Empty keeps the
	// in-process memory cache.
	RedisURL string `envconfig:"REDIS_URL"`

	// RateRPS and RateBurst pace outbound requests to the upstream.
	RateRPS   float64 `envconfig:"RATE_RPS" default:"10"`
	RateBurst int     `envconfig:"RATE_BURST" default:"10"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogPretty switches from JSON to human-readable console output.
	LogPretty bool `envconfig:"LOG_PRETTY" default:"false"`
}

// Load reads the configuration from the environment and an optional
// .env file in the working directory. Variables already present in the
// environment win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := new(Config)
	if err := envconfig.Process("aoe4proxy", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
