// Package config loads the application Settings from layered sources:
// built-in defaults -> optional YAML file -> .env dotfile -> APP_ environment
// variables. The result is validated once at startup and treated as read-only
// for the rest of the process.
package config

import (
	"strings"
	"time"
)

// Settings holds all configuration for the application.
type Settings struct {
	Env        string `koanf:"env"`
	APIBaseURL string `koanf:"api_base_url"`
	APIKey     string `koanf:"api_key"`
	Debug      bool   `koanf:"debug"`

	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// IsProduction reports whether the settings describe the prod environment.
func (s *Settings) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(s.Env), EnvProd)
}

// LogSettings returns the logging configuration to bootstrap with. Debug
// forces the debug level; Settings itself is not modified.
func (s *Settings) LogSettings() LogConfig {
	l := s.Log
	if s.Debug {
		l.Level = "debug"
	}
	return l
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// ClientConfig holds outbound HTTP client settings. BaseURL is not loaded
// from its own key; Load copies Settings.APIBaseURL into it.
type ClientConfig struct {
	BaseURL        string               `koanf:"-"`
	APIKey         string               `koanf:"-"`
	Timeout        time.Duration        `koanf:"timeout"`
	UserAgent      string               `koanf:"user_agent"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero RequestsPerSecond
// disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
