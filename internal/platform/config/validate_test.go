package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-cli-template/internal/platform/config"
)

func TestValidate_ValidSettings(t *testing.T) {
	t.Parallel()

	s := validSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid settings: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	s := validSettings()
	s.Log.Level = "verbose"

	if err := s.Validate(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid for invalid log level", err)
	}
}

func TestValidate_AcceptsMixedCaseLevelAndFormat(t *testing.T) {
	t.Parallel()

	s := validSettings()
	s.Log.Level = "WARN"
	s.Log.Format = "Json"
	s.APIBaseURL = "https://api.example.com/"

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil for mixed-case level and format", err)
	}
	if s.Log.Level != "WARN" || s.Log.Format != "Json" {
		t.Errorf("Validate() changed Log to %q/%q, want WARN/Json", s.Log.Level, s.Log.Format)
	}
}

func TestValidate_FileSinkNeedsMaxSize(t *testing.T) {
	t.Parallel()

	s := validSettings()
	s.Log.File = "logs/app.log"
	s.Log.MaxSizeMB = 0

	if err := s.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for max_size_mb=0 with a log file")
	}
}

func TestValidate_RateLimitNeedsBurst(t *testing.T) {
	t.Parallel()

	s := validSettings()
	s.Client.RateLimit.RequestsPerSecond = 5
	s.Client.RateLimit.BurstSize = 0

	if err := s.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for burst_size=0")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	s := validSettings()
	s.Telemetry.Enabled = true
	s.Telemetry.Exporter = "otlp"
	s.Telemetry.Endpoint = ""

	err := s.Validate()
	if !errors.Is(err, config.ErrMissing) {
		t.Fatalf("Validate() = %v, want ErrMissing for otlp without endpoint", err)
	}
}

func TestValidate_TelemetryDisabledSkipsChecks(t *testing.T) {
	t.Parallel()

	s := validSettings()
	s.Telemetry.Exporter = "carrier-pigeon"

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil when telemetry is disabled", err)
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	s := validSettings()
	s.Env = ""
	s.Log.Format = "xml"
	s.Client.Timeout = 0

	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil, want aggregated error")
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		t.Fatalf("Validate() error %T does not wrap multiple errors", err)
	}

	var count int
	for _, section := range joined.Unwrap() {
		if inner, ok := section.(interface{ Unwrap() []error }); ok {
			count += len(inner.Unwrap())
		}
	}
	if count != 3 {
		t.Errorf("got %d field errors, want 3: %v", count, err)
	}
}

// validSettings returns Settings with all fields set to valid values.
func validSettings() *config.Settings {
	return &config.Settings{
		Env:        "dev",
		APIBaseURL: "https://httpbin.org",
		Log: config.LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxAgeDays: 14,
		},
		Client: config.ClientConfig{
			BaseURL:   "https://httpbin.org",
			Timeout:   30 * time.Second,
			UserAgent: "ExampleService/1.0",
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Exporter:    "stdout",
			ServiceName: "go-cli-template",
		},
	}
}
