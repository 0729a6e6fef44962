package ports

import (
	"context"
	"net/url"

	"github.com/jsamuelsen11/go-cli-template/internal/domain"
)

// EchoClient defines the client port for an httpbin-compatible echo API.
// Implemented by the echoapi adapter; called by the application layer.
type EchoClient interface {
	// Endpoint returns the absolute URL of the echo endpoint, used in
	// user-facing messages.
	Endpoint() string

	// Get sends a GET to the echo endpoint with the given query parameters
	// and returns the decoded JSON object. Non-success responses are
	// returned as *domain.StatusError.
	Get(ctx context.Context, params url.Values) (map[string]any, error)

	// Probe sends a bare GET to the echo endpoint and reports the status and
	// headers. Non-success responses are returned as *domain.StatusError
	// carrying the response headers.
	Probe(ctx context.Context) (*domain.ProbeResult, error)
}
