package main

import (
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-cli-template/internal/adapters/clients/echoapi"
	"github.com/jsamuelsen11/go-cli-template/internal/app"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/config"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-cli-template/internal/ports"
)

// echoServiceName identifies the echo API in traces, metrics and breaker logs.
const echoServiceName = "echo-api"

// container owns the dependency graph for one CLI run.
type container struct {
	injector *do.RootScope
}

func newContainer(settings *config.Settings, logger *slog.Logger, metrics *telemetry.Metrics) *container {
	injector := do.New()

	do.ProvideValue(injector, settings)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Settings](i)
		m := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, echoServiceName, m, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EchoClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return echoapi.NewClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ExampleService, error) {
		cfg := do.MustInvoke[*config.Settings](i)
		echo := do.MustInvoke[ports.EchoClient](i)
		return app.NewExampleService(echo, cfg.Env, logger), nil
	})

	return &container{injector: injector}
}

// Service resolves the example service, eagerly wiring the graph.
func (c *container) Service() (ports.ExampleService, error) {
	svc, err := do.Invoke[ports.ExampleService](c.injector)
	if err != nil {
		return nil, fmt.Errorf("resolving example service: %w", err)
	}
	return svc, nil
}

// Close releases idle HTTP connections if the client was built.
func (c *container) Close() {
	if client, err := do.Invoke[*httpclient.Client](c.injector); err == nil {
		client.Close()
	}
}
