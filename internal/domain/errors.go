package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the field message used when a required input is empty.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+" "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StatusError reports a non-success response from an upstream API. The
// response status and headers are kept so callers can report them.
type StatusError struct {
	Code    int
	Detail  string
	Headers map[string]string
}

func (e *StatusError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.Code)
	}
	return fmt.Sprintf("%d %s", e.Code, detail)
}

// Unwrap maps the status code to a sentinel error so callers can use
// errors.Is without inspecting codes. Returns nil for codes with no mapping.
func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusNotFound:
		return ErrNotFound
	case e.Code == http.StatusBadRequest || e.Code == http.StatusUnprocessableEntity:
		return ErrValidation
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return ErrForbidden
	case e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return nil
	}
}
