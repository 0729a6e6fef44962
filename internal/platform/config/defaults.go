package config

// Well-known environment names.
const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	defaultAPIBaseURL = "https://httpbin.org"
	defaultUserAgent  = "ExampleService/1.0"
	defaultService    = "go-cli-template"

	defaultLogMaxSizeMB  = 10
	defaultLogMaxAgeDays = 14

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 1
)

// defaults returns the default configuration values. Every known key is
// listed, including the ones without a usable default (env, api_key), so that
// environment variables can be mapped back to their dotted keys.
func defaults() map[string]any {
	return map[string]any{
		"env":          "",
		"api_base_url": defaultAPIBaseURL,
		"api_key":      "",
		"debug":        false,

		"log.level":        "info",
		"log.format":       "text",
		"log.file":         "",
		"log.max_size_mb":  defaultLogMaxSizeMB,
		"log.max_age_days": defaultLogMaxAgeDays,
		"log.compress":     true,

		"client.timeout":                         "30s",
		"client.user_agent":                      defaultUserAgent,
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": defaultService,
	}
}
