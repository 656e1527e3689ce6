package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Board.validate(),
		c.Telemetry.validate(),
	)
}

// problems collects the failed checks of one section.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), "%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (p problems) err() error { return errors.Join(p...) }

func (s *ServerConfig) validate() error {
	var p problems
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	return p.err()
}

func (l *LogConfig) validate() error {
	var p problems
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
	return p.err()
}

func (cl *ClientConfig) validate() error {
	var p problems
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.OrgHeader != "", "client.org_header must not be empty")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1, got %d", rl.BurstSize)
	return p.err()
}

func (b *BoardConfig) validate() error {
	var p problems
	p.oneOf("board.load_strategy", b.LoadStrategy, LoadStrategyPerStage, LoadStrategySingle)
	p.check(b.LoadConcurrency >= 1, "board.load_concurrency must be >= 1, got %d", b.LoadConcurrency)
	p.check(b.SyncTimeout > 0, "board.sync_timeout must be positive")
	p.check(b.SessionTTL > 0, "board.session_ttl must be positive")
	p.check(b.MaxSessions >= 1, "board.max_sessions must be >= 1, got %d", b.MaxSessions)
	return p.err()
}

// Exporter settings are only checked when telemetry is on.
func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var p problems
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	return p.err()
}
