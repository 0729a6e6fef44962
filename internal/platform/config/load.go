package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix shared by every environment variable the
	// loader reads. Matching is case-insensitive.
	EnvPrefix = "APP_"

	// DefaultEnvFile is the dotenv file read when no other path is given.
	DefaultEnvFile = ".env"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
	envFile    string
	environ    func() []string
}

// WithConfigFile sets an optional YAML file layered between the defaults and
// the environment. The file must exist when set.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) {
		o.configFile = path
	}
}

// WithEnvFile sets the dotenv file to read. A missing file is ignored; an
// empty path disables the dotenv layer.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) {
		o.envFile = path
	}
}

// WithEnviron replaces os.Environ as the source of process environment
// variables, in KEY=VALUE form.
func WithEnviron(fn func() []string) Option {
	return func(o *loadOptions) {
		o.environ = fn
	}
}

// Load reads Settings using a 4-layer hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. YAML config file (WithConfigFile)
//  3. Dotenv file (WithEnvFile, ".env" by default)
//  4. Process environment variables (APP_ prefix)
//
// Environment variable names are resolved against the known keys so that
// field-internal underscores survive:
//
//	APP_ENV                       -> env
//	APP_API_BASE_URL              -> api_base_url
//	APP_LOG_LEVEL                 -> log.level
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
//
// The returned error names every missing or invalid field.
func Load(opts ...Option) (*Settings, error) {
	o := &loadOptions{envFile: DefaultEnvFile, environ: os.Environ}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: Defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: Optional YAML file.
	if o.configFile != "" {
		if err := k.Load(file.Provider(o.configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", o.configFile, err)
		}
	}

	envLookup := buildEnvLookup(k.Keys())

	// Layer 3: Dotenv file, mapped exactly like real environment variables.
	dotenv, err := readDotenv(o.envFile)
	if err != nil {
		return nil, err
	}
	if len(dotenv) > 0 {
		if err := k.Load(envProvider(envLookup, func() []string { return dotenv }), nil); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", o.envFile, err)
		}
	}

	// Layer 4: Process environment.
	if err := k.Load(envProvider(envLookup, o.environ), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unmarshalling settings: %w", err)
	}

	s.derive()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	return &s, nil
}

// derive fills the fields that are copied from other keys. Loaded values are
// kept exactly as given; consumers interpret case and trailing slashes.
func (s *Settings) derive() {
	s.Client.BaseURL = s.APIBaseURL
	s.Client.APIKey = s.APIKey
}

// envProvider builds a koanf env provider that accepts APP_-prefixed
// variables in any letter case and maps them through envLookup.
func envProvider(envLookup map[string]string, environ func() []string) *env.Env {
	return env.Provider(".", env.Opt{
		EnvironFunc: environ,
		TransformFunc: func(key, value string) (string, any) {
			if !strings.HasPrefix(strings.ToUpper(key), EnvPrefix) {
				return "", nil
			}
			key = strings.ToLower(key[len(EnvPrefix):])

			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}

			// Fallback: simple underscore-to-dot replacement.
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
}

// readDotenv parses the dotenv file at path into KEY=VALUE pairs. A missing
// file yields no pairs.
func readDotenv(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	pairs := make([]string, 0, len(vars))
	for key, value := range vars {
		pairs = append(pairs, key+"="+value)
	}
	sort.Strings(pairs)

	return pairs, nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
// For each koanf key like "client.retry.max_attempts", the env form
// "client_retry_max_attempts" is computed by replacing dots with underscores.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}

// EnvVar returns the environment variable name for a koanf key
// (e.g. "log.level" -> "APP_LOG_LEVEL").
func EnvVar(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
