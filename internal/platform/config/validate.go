package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Sentinel errors for errors.Is() checking on validation failures.
var (
	ErrMissing = errors.New("missing required setting")
	ErrInvalid = errors.New("invalid setting")
)

// FieldError reports a single setting that failed validation. Key is the
// dotted koanf key (e.g. "log.level"); use EnvVar(Key) for the variable name.
type FieldError struct {
	Key    string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissing) {
		return fmt.Sprintf("%s is required (set %s)", e.Key, EnvVar(e.Key))
	}
	return e.Key + " " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(key string) error {
	return &FieldError{Key: key, Err: ErrMissing}
}

func invalid(key, format string, args ...any) error {
	return &FieldError{Key: key, Reason: fmt.Sprintf(format, args...), Err: ErrInvalid}
}

// Validate checks all settings and returns aggregated errors.
func (s *Settings) Validate() error {
	return errors.Join(
		s.validate(),
		s.Log.validate(),
		s.Client.validate(),
		s.Telemetry.validate(),
	)
}

func (s *Settings) validate() error {
	var errs []error

	if strings.TrimSpace(s.Env) == "" {
		errs = append(errs, missing("env"))
	}

	if s.APIBaseURL == "" {
		errs = append(errs, missing("api_base_url"))
	} else if !isHTTPURL(s.APIBaseURL) {
		errs = append(errs, invalid("api_base_url", "must be an absolute http(s) URL, got %q", s.APIBaseURL))
	}

	if s.IsProduction() && s.APIKey == "" {
		errs = append(errs, missing("api_key"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, invalid("log.level", "must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, invalid("log.format", "must be one of: json, text; got %q", l.Format))
	}

	if l.File != "" && l.MaxSizeMB < 1 {
		errs = append(errs, invalid("log.max_size_mb", "must be >= 1, got %d", l.MaxSizeMB))
	}
	if l.MaxAgeDays < 0 {
		errs = append(errs, invalid("log.max_age_days", "must not be negative, got %d", l.MaxAgeDays))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, invalid("client.timeout", "must be positive"))
	}
	if cl.UserAgent == "" {
		errs = append(errs, missing("client.user_agent"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, invalid("client.retry.max_attempts", "must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, invalid("client.retry.multiplier", "must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, invalid("client.circuit_breaker.max_failures", "must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, invalid("client.rate_limit.requests_per_second", "must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, invalid("client.rate_limit.burst_size", "must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, invalid("telemetry.exporter", "must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, missing("telemetry.endpoint"))
	}
	if t.ServiceName == "" {
		errs = append(errs, missing("telemetry.service_name"))
	}

	return errors.Join(errs...)
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
