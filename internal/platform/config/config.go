// Package config loads and validates settings for the board service and the
// terminal client. Layers, lowest precedence first: built-in defaults,
// base.yaml, {profile}.yaml, APP_* environment variables.
package config

import "time"

// Config is the merged configuration of one profile.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Board     BoardConfig     `koanf:"board"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig is the board API listener. ReadTimeout also bounds request
// headers; WriteTimeout bounds each handler.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig picks the slog level (debug, info, warn, error) and format
// (json, text).
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig configures the lead API client. OrgHeader names the header
// that carries the caller's organization in both directions.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	OrgHeader      string               `koanf:"org_header"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig is the backoff schedule for idempotent lead API calls.
// MaxAttempts of 1 disables retries.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips the lead API breaker after MaxFailures
// consecutive failures and half-opens it after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig bounds outbound request rate. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// Board load strategies.
const (
	LoadStrategyPerStage = "per_stage"
	LoadStrategySingle   = "single"
)

// BoardConfig holds board session and synchronization settings.
type BoardConfig struct {
	// LoadStrategy is per_stage (one request per stage) or single (one
	// request, grouped locally).
	LoadStrategy    string        `koanf:"load_strategy"`
	LoadConcurrency int           `koanf:"load_concurrency"`
	SyncTimeout     time.Duration `koanf:"sync_timeout"`
	SessionTTL      time.Duration `koanf:"session_ttl"`
	MaxSessions     int           `koanf:"max_sessions"`
}

// TelemetryConfig selects the OpenTelemetry exporter, stdout or otlp.
// Endpoint is required for otlp.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
