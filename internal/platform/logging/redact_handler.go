package logging

import (
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// redactedValue replaces sensitive values in log output.
const redactedValue = "[REDACTED]"

// redactedParam replaces sensitive query parameter values in logged URLs.
const redactedParam = "xxxxx"

// SensitiveHeaders is the canonical set of HTTP header names (lowercase) that
// carry credentials and must be redacted before logging. The masq layer and
// RedactHeaders share it so the two cannot drift apart.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// SensitiveParams is the set of query parameter names (lowercase) whose
// values are masked by RedactURL.
var SensitiveParams = map[string]bool{
	"api_key":      true,
	"apikey":       true,
	"access_token": true,
	"token":        true,
	"password":     true,
	"secret":       true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// apiKeyInlinePattern matches inline "api_key=<value>" or "apikey:<value>"
// patterns that may appear in arbitrary string fields. A value that is only
// the redactedParam marker (or a shorter run of x) does not match, so URLs
// already masked by RedactURL are logged intact.
var apiKeyInlinePattern = regexp.MustCompile(
	`(?i)(api[_\-]?key|apikey)\s*[:=]\s*(?:[^x\s&]|x[^x\s&]|xx[^x\s&]|xxx[^x\s&]|xxxx[^x\s&]|xxxxx[^\s&])`,
)

// fixedRedactOptions is the number of masq options beyond the dynamic
// SensitiveHeaders set (4 field names + 2 prefixes + 3 regexes).
const fixedRedactOptions = 9

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveHeaders))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("api_key"),

		// Prefix-based redaction for variations like "secret_key", "api_key_v2".
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}

// RedactHeaders converts an http.Header map into a slice of slog.Attr values
// suitable for structured logging. Headers whose lowercase name appears in
// SensitiveHeaders are replaced with "[REDACTED]"; all others are included
// as-is. Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redactedValue))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}

// RedactURL renders u for logging with user info and the values of
// SensitiveParams masked as "xxxxx", the same marker url.URL.Redacted uses
// for passwords. Other query parameters are kept.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	q := u.Query()
	masked := false
	for key := range q {
		if SensitiveParams[strings.ToLower(key)] {
			q[key] = []string{redactedParam}
			masked = true
		}
	}
	if !masked {
		return u.Redacted()
	}

	clone := *u
	clone.RawQuery = q.Encode()
	return clone.Redacted()
}
