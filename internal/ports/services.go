package ports

import (
	"context"
	"net/url"

	"github.com/jsamuelsen11/go-cli-template/internal/domain"
)

// ExampleService defines the service port for the illustrative operations
// exposed by the CLI. Implemented by the application layer.
type ExampleService interface {
	// Greet returns a greeting for name. Returns domain.ErrValidation when
	// name is empty after trimming.
	Greet(ctx context.Context, name string) (string, error)

	// Ping checks connectivity to the configured API. It never fails;
	// problems are reported through PingResult.Success and Message.
	Ping(ctx context.Context) domain.PingResult

	// Get performs a GET with query parameters and returns the decoded
	// JSON response.
	Get(ctx context.Context, params url.Values) (map[string]any, error)
}
