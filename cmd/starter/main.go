// Package main is the entry point for the starter CLI. It parses flags with
// kong, loads Settings, bootstraps logging and telemetry, wires the example
// service with samber/do v2 and maps the outcome to an exit code.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/jsamuelsen11/go-cli-template/internal/platform/config"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/logging"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/telemetry"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

const otelShutdownTimeout = 5 * time.Second

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Environ, os.Stdout, os.Stderr, logging.Setup)

	stop()
	_ = logging.Close()
	os.Exit(code)
}

// setupLogger builds the logger for one run. main passes the process-wide
// logging.Setup.
type setupLogger func(cfg config.LogConfig, console io.Writer) (*slog.Logger, error)

// run executes one CLI invocation and returns its exit code. Errors are
// reported on stderr; command output goes to stdout.
func run(
	ctx context.Context,
	args []string,
	environ func() []string,
	stdout, stderr io.Writer,
	setup setupLogger,
) int {
	var cli CLI
	kctx, exit, err := parse(&cli, args, stdout, stderr)
	if exit != nil {
		return exit.code
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	settings, err := config.Load(
		config.WithConfigFile(cli.Config),
		config.WithEnvFile(cli.EnvFile),
		config.WithEnviron(environ),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: loading settings: %v\n", err)
		return exitFailure
	}

	logger, err := setup(settings.LogSettings(), stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: setting up logging: %v\n", err)
		return exitFailure
	}

	logger.InfoContext(ctx, "starting starter CLI",
		slog.String("version", version),
		slog.String("command", kctx.Command()),
	)
	logger.DebugContext(ctx, "settings loaded",
		slog.String("env", settings.Env),
		slog.String("api_base_url", settings.APIBaseURL),
	)

	otel, err := telemetry.Init(ctx, settings.Telemetry, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: initializing telemetry: %v\n", err)
		return exitFailure
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(shutdownCtx); err != nil {
			logger.ErrorContext(ctx, "telemetry shutdown error", slog.Any("error", err))
		}
	}()

	container := newContainer(settings, logger, otel.Metrics)
	defer container.Close()

	svc, err := container.Service()
	if err != nil {
		fmt.Fprintf(stderr, "error: wiring dependencies: %v\n", err)
		return exitFailure
	}

	return execute(ctx, kctx, &session{ctx: ctx, svc: svc, stdout: stdout, logger: logger}, stderr)
}

// execute runs the selected command. A panic is logged with its stack and
// turned into exitFailure.
func execute(ctx context.Context, kctx *kong.Context, sess *session, stderr io.Writer) (code int) {
	defer func() {
		if v := recover(); v != nil {
			sess.logger.ErrorContext(ctx, "panic recovered",
				slog.String("panic", fmt.Sprint(v)),
				slog.String("stack", string(debug.Stack())),
				slog.String("command", kctx.Command()),
			)
			fmt.Fprintf(stderr, "error: unexpected panic: %v\n", v)
			code = exitFailure
		}
	}()

	return exitCode(ctx, stderr, sess.logger, kctx.Run(sess))
}

// exitCode reports err and maps it to an exit code. An interrupted context
// wins over the error it caused.
func exitCode(ctx context.Context, stderr io.Writer, logger *slog.Logger, err error) int {
	if ctx.Err() != nil {
		fmt.Fprintln(stderr, "operation cancelled")
		return exitInterrupted
	}
	if err == nil {
		return exitOK
	}

	if !errors.Is(err, errReported) {
		logger.ErrorContext(ctx, "command failed",
			slog.String("operation", "run"),
			slog.Any("error", err),
		)
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return exitFailure
}
