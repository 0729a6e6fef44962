package echoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-cli-template/internal/domain"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/logging"
)

// Requester centralizes the HTTP request lifecycle for the echo client:
// request creation, execution via httpclient.Client, response body cleanup,
// status validation, error translation and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// Get sends a GET for path with the given query and expects a 2xx response.
// If respBody is non-nil the response body is decoded into it as JSON.
// The returned ProbeResult describes the response that was received.
func (r *Requester) Get(ctx context.Context, path string, query url.Values, respBody any) (*domain.ProbeResult, error) {
	u := r.client.BaseURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	return r.execute(req, respBody)
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) (*domain.ProbeResult, error) {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do returns both resp and err when retries are exhausted
		// on a retryable status. Report the upstream status in that case.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			return nil, r.unexpectedStatus(req, resp)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("operation", "echoapi.Get"),
			slog.String("method", req.Method),
			slog.String("url", logging.RedactURL(req.URL)),
			slog.Any("error", err),
		)
		return nil, err
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, r.unexpectedStatus(req, resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return nil, fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return &domain.ProbeResult{
		Status:  resp.StatusCode,
		Headers: flattenHeaders(resp.Header),
	}, nil
}

func (r *Requester) unexpectedStatus(req *http.Request, resp *http.Response) error {
	r.logger.ErrorContext(req.Context(), "unexpected status",
		slog.String("operation", "echoapi.Get"),
		slog.String("method", req.Method),
		slog.String("url", logging.RedactURL(req.URL)),
		slog.Int("status", resp.StatusCode),
	)
	return TranslateHTTPError(resp)
}
