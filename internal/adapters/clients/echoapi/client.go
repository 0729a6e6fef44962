package echoapi

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/go-cli-template/internal/domain"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-cli-template/internal/ports"
)

// EchoPath is the endpoint that echoes request arguments and headers.
const EchoPath = "/get"

// Compile-time interface check.
var _ ports.EchoClient = (*Client)(nil)

// Client is the outbound adapter for an httpbin-compatible echo API. The
// underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, default headers and OpenTelemetry tracing.
type Client struct {
	req *Requester
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point at the API root
// (e.g. "https://httpbin.org").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{req: NewRequester(client, logger)}
}

// Endpoint returns the absolute URL of the echo endpoint.
func (c *Client) Endpoint() string {
	return c.req.BaseURL() + EchoPath
}

// Get sends GET /get with params and returns the decoded JSON object.
func (c *Client) Get(ctx context.Context, params url.Values) (map[string]any, error) {
	var body map[string]any
	if _, err := c.req.Get(ctx, EchoPath, params, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// Probe sends a bare GET /get and reports the response status and headers.
// The body is discarded.
func (c *Client) Probe(ctx context.Context) (*domain.ProbeResult, error) {
	return c.req.Get(ctx, EchoPath, nil, nil)
}
