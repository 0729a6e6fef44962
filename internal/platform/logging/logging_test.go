package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-cli-template/internal/platform/logging"
)

// --- New tests ---

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, `"level":"INFO"`) {
		t.Errorf("output = %q, want it to contain '\"level\":\"INFO\"'", out)
	}
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("output = %q, want it to contain '\"msg\":\"hello\"'", out)
	}
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "text", &buf)

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("output = %q, want it to contain 'level=INFO'", out)
	}
	if !strings.Contains(out, "msg=hello") {
		t.Errorf("output = %q, want it to contain 'msg=hello'", out)
	}
}

func TestNew_FormatIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(" WARN ", "JSON", &buf)

	logger.Info("filtered")
	logger.Warn("hello")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("output = %q, want JSON output for format \"JSON\"", out)
	}
	if strings.Contains(out, "filtered") {
		t.Errorf("output = %q, want info filtered at level \" WARN \"", out)
	}
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "xml", &buf)

	logger.Info("hello")

	if !strings.Contains(buf.String(), "level=INFO") {
		t.Errorf("output = %q, want text format for unknown format string", buf.String())
	}
}

func TestNew_DebugLevelIncludesSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("debug", "json", &buf)

	logger.Debug("with source")

	out := buf.String()
	if !strings.Contains(out, `"source"`) {
		t.Errorf("output = %q, want it to contain '\"source\"' at debug level", out)
	}
}

func TestNew_InfoLevelExcludesSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("no source")

	if strings.Contains(buf.String(), `"source"`) {
		t.Errorf("output = %q, want no '\"source\"' at info level", buf.String())
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		log   func(*slog.Logger)
		want  bool
	}{
		{name: "info filters debug", level: "info", log: func(l *slog.Logger) { l.Debug("x") }, want: false},
		{name: "error filters warn", level: "error", log: func(l *slog.Logger) { l.Warn("x") }, want: false},
		{name: "debug passes debug", level: "debug", log: func(l *slog.Logger) { l.Debug("x") }, want: true},
		{name: "uppercase level", level: "DEBUG", log: func(l *slog.Logger) { l.Debug("x") }, want: true},
		{name: "unknown level is info", level: "verbose", log: func(l *slog.Logger) { l.Info("x") }, want: true},
		{name: "unknown level filters debug", level: "verbose", log: func(l *slog.Logger) { l.Debug("x") }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger reports enabled, want every level disabled")
	}
}

// --- Context tests ---

func TestFromContext_WithLogger(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()

	ctx := logging.WithLogger(context.Background(), logger)
	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext returned different logger than the one stored with WithLogger")
	}
}

func TestFromContext_NoLogger(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got == nil {
		t.Error("FromContext on bare context returned nil, want slog.Default()")
	}
}

// --- Redaction tests ---

func TestNew_RedactsSensitiveFieldNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		value string
	}{
		{field: "api_key", value: "k-live-123456"},
		{field: "x-api-key", value: "k-live-123456"},
		{field: "authorization", value: "Bearer supersecret-token"},
		{field: "password", value: "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := logging.New("info", "json", &buf)

			logger.Info("event", slog.String(tt.field, tt.value))

			out := buf.String()
			if strings.Contains(out, tt.value) {
				t.Errorf("log output contains raw %s value, want it redacted: %q", tt.field, out)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Error("log output missing [REDACTED] marker")
			}
		})
	}
}

func TestNew_RedactsInlineAPIKey(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("dump", slog.String("detail", "api_key=abcdef0123"))

	if strings.Contains(buf.String(), "abcdef0123") {
		t.Errorf("log output contains inline api key: %q", buf.String())
	}
}

func TestNew_RedactsInlineAPIKeyStartingWithX(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("dump", slog.String("detail", "apikey: xk-9912"))

	if strings.Contains(buf.String(), "xk-9912") {
		t.Errorf("log output contains inline api key: %q", buf.String())
	}
}

func TestNew_KeepsURLMaskedByRedactURL(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://httpbin.org/get?api_key=query-secret&q=go")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}

	var buf bytes.Buffer
	logger := logging.New("debug", "text", &buf)

	logger.Debug("sending request", slog.String("url", logging.RedactURL(u)))

	out := buf.String()
	if strings.Contains(out, "query-secret") {
		t.Errorf("log output contains the raw api_key: %q", out)
	}
	if !strings.Contains(out, "api_key=xxxxx") || !strings.Contains(out, "q=go") {
		t.Errorf("log output = %q, want the masked URL logged intact", out)
	}
	if strings.Contains(out, "url=[REDACTED]") {
		t.Errorf("log output = %q, want url not re-redacted", out)
	}
}

func TestNew_DoesNotRedactNonSensitiveFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("event",
		slog.String("env", "dev"),
		slog.String("url", "https://httpbin.org/get"),
	)

	out := buf.String()
	if !strings.Contains(out, `"env":"dev"`) {
		t.Error("log output missing env, non-sensitive field should not be redacted")
	}
	if !strings.Contains(out, "https://httpbin.org/get") {
		t.Error("log output missing url, non-sensitive field should not be redacted")
	}
}
