package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/jsamuelsen11/go-cli-template/internal/platform/config"
	"github.com/jsamuelsen11/go-cli-template/internal/ports"
)

// errReported marks failures whose details were already written to stdout.
var errReported = errors.New("failure already reported")

// CLI is the flat command set of the starter binary.
type CLI struct {
	Config  string           `help:"Optional YAML config file layered under the environment." placeholder:"FILE"`
	EnvFile string           `help:"Dotenv file to read; ignored when missing." default:"${env_file}" placeholder:"FILE"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Greet GreetCmd `cmd:"" help:"Print a greeting."`
	Ping  PingCmd  `cmd:"" help:"Test the connection to the configured API."`
	Get   GetCmd   `cmd:"" help:"Send a GET request with query parameters."`
}

// session carries what every command needs. kong binds it into Run.
type session struct {
	ctx    context.Context
	svc    ports.ExampleService
	stdout io.Writer
	logger *slog.Logger
}

// GreetCmd prints "Hello, <name>!".
type GreetCmd struct {
	Name string `arg:"" optional:"" default:"world" help:"Name to greet."`
}

func (c *GreetCmd) Run(rt *session) error {
	msg, err := rt.svc.Greet(rt.ctx, c.Name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rt.stdout, msg)
	return err
}

// PingCmd probes the API and prints the result as JSON. It fails when the
// probe was unsuccessful.
type PingCmd struct{}

func (c *PingCmd) Run(rt *session) error {
	rt.logger.InfoContext(rt.ctx, "executing ping command")

	res := rt.svc.Ping(rt.ctx)
	if err := writeJSON(rt.stdout, res); err != nil {
		return err
	}
	if !res.Success {
		return errReported
	}
	return nil
}

// GetCmd sends the given query parameters and prints the JSON response.
type GetCmd struct {
	Params []string `name:"param" aliases:"params" short:"p" sep:"none" placeholder:"KEY=VALUE" help:"Query parameter, repeatable."`
}

func (c *GetCmd) Run(rt *session) error {
	params, err := ParseParams(c.Params)
	if err != nil {
		return err
	}

	rt.logger.InfoContext(rt.ctx, "executing get command", slog.Int("params", len(params)))

	body, err := rt.svc.Get(rt.ctx, params)
	if err != nil {
		return err
	}
	return writeJSON(rt.stdout, body)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// exitRequest is raised through kong's exit hook by --help and --version.
type exitRequest struct {
	code int
}

// parse builds the kong parser and parses args. A non-nil exit means kong
// already handled the invocation (help or version) and the process should
// stop with that code.
func parse(cli *CLI, args []string, stdout, stderr io.Writer) (kctx *kong.Context, exit *exitRequest, err error) {
	parser, err := kong.New(cli,
		kong.Name("starter"),
		kong.Description("Go CLI starter: greet, ping and get against an httpbin-compatible API."),
		kong.Vars{"version": version, "env_file": config.DefaultEnvFile},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitRequest{code: code}) }),
		kong.UsageOnError(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("building parser: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			kctx, exit, err = nil, &req, nil
		}
	}()

	kctx, err = parser.Parse(args)
	return kctx, nil, err
}
