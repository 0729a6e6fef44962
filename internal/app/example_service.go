// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/go-cli-template/internal/domain"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/logging"
	"github.com/jsamuelsen11/go-cli-template/internal/ports"
)

// Compile-time check that ExampleService implements ports.ExampleService.
var _ ports.ExampleService = (*ExampleService)(nil)

// ExampleService implements ports.ExampleService. Greet is purely local;
// Ping and Get call the configured echo API through the EchoClient port.
type ExampleService struct {
	client ports.EchoClient
	logger *slog.Logger
}

// NewExampleService creates an ExampleService. env is the environment name
// from Settings and is attached to log records. A nil logger discards logs.
func NewExampleService(client ports.EchoClient, env string, logger *slog.Logger) *ExampleService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ExampleService{
		client: client,
		logger: logger.With(slog.String("env", env)),
	}
}

// Greet returns "Hello, <name>!" for the trimmed name.
func (s *ExampleService) Greet(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewValidationError("name", domain.MsgRequired)
	}

	s.logger.DebugContext(ctx, "greeting", slog.String("name", name))

	return fmt.Sprintf("Hello, %s!", name), nil
}

// Ping probes the echo endpoint and reports the outcome. Failures are
// described in the result rather than returned.
func (s *ExampleService) Ping(ctx context.Context) domain.PingResult {
	endpoint := s.client.Endpoint()
	s.logger.InfoContext(ctx, "pinging API", slog.String("url", endpoint))

	res, err := s.client.Probe(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "ping failed",
			slog.String("operation", "Ping"),
			slog.String("url", endpoint),
			slog.Any("error", err),
		)

		out := domain.PingResult{
			Headers: map[string]string{},
			Message: fmt.Sprintf("Connection to %s failed: %v", endpoint, err),
		}
		var serr *domain.StatusError
		if errors.As(err, &serr) {
			out.Status = serr.Code
			if serr.Headers != nil {
				out.Headers = serr.Headers
			}
		}
		return out
	}

	return domain.PingResult{
		Status:  res.Status,
		Headers: res.Headers,
		Success: true,
		Message: "Successfully connected to " + endpoint,
	}
}

// Get sends the query parameters to the echo endpoint and returns the
// decoded JSON response.
func (s *ExampleService) Get(ctx context.Context, params url.Values) (map[string]any, error) {
	endpoint := s.client.Endpoint()
	s.logger.InfoContext(ctx, "sending GET request",
		slog.String("url", endpoint),
		slog.Int("params", len(params)),
	)

	body, err := s.client.Get(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "GET request failed",
			slog.String("operation", "Get"),
			slog.String("url", endpoint),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("GET request to %s failed: %w", endpoint, err)
	}

	return body, nil
}
