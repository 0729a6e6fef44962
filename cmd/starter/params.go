package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidParam is returned for a --param value that is not KEY=VALUE.
var ErrInvalidParam = errors.New("invalid parameter")

// ParseParams converts KEY=VALUE pairs into query values. Keys and values
// are trimmed and the value may itself contain "=". Repeated keys keep every
// value in order.
func ParseParams(raw []string) (url.Values, error) {
	params := url.Values{}
	for _, p := range raw {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q, expected KEY=VALUE", ErrInvalidParam, p)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%w: empty key in %q", ErrInvalidParam, p)
		}
		params.Add(key, strings.TrimSpace(value))
	}
	return params, nil
}
