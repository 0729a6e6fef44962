// Package echoapi is the outbound adapter for an httpbin-compatible echo
// API. It translates HTTP responses into domain types and domain errors.
package echoapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-cli-template/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail represents an RFC 7807 Problem Details response.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within an RFC 7807 response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a non-success response to a domain error.
//
// A 400/422 problem+json body with field errors becomes a
// *domain.ValidationError. Everything else becomes a *domain.StatusError
// carrying the status, the problem detail (if any) and the response headers.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	if (resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity) && len(pd.Errors) > 0 {
		return toValidationError(pd.Errors)
	}

	return &domain.StatusError{
		Code:    resp.StatusCode,
		Detail:  pd.Detail,
		Headers: flattenHeaders(resp.Header),
	}
}

// parseProblemDetail attempts to read and parse an RFC 7807 body from the
// response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts RFC 7807 error details to a domain ValidationError.
// It strips the "query." prefix from locations to produce clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "query.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}

// flattenHeaders joins multi-valued headers with ", " and keys them by their
// canonical name.
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = strings.Join(v, ", ")
	}
	return out
}
