package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-cli-template/internal/domain"
	"github.com/jsamuelsen11/go-cli-template/internal/platform/logging"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// runCLI invokes run with an isolated logger, no dotenv file and the given
// environment.
func runCLI(t *testing.T, ctx context.Context, env []string, args ...string) result {
	t.Helper()

	noDotenv := filepath.Join(t.TempDir(), "missing.env")
	args = append([]string{"--env-file", noDotenv}, args...)

	var stdout, stderr bytes.Buffer
	var logs logging.Bootstrapper
	t.Cleanup(func() { _ = logs.Close() })

	code := run(ctx, args, func() []string { return env }, &stdout, &stderr, logs.Setup)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func validEnv(baseURL string) []string {
	return []string{
		"APP_ENV=dev",
		"APP_API_BASE_URL=" + baseURL,
		"APP_CLIENT_RETRY_MAX_ATTEMPTS=1",
		"APP_LOG_LEVEL=error",
	}
}

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		args := map[string]string{}
		for k := range r.URL.Query() {
			args[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"args": args})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// wantCode fails the test when res exited with a code other than want.
func wantCode(t *testing.T, res result, want int) {
	t.Helper()

	if res.code != want {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", res.code, want, res.stderr)
	}
}

// decodeStdout parses res.stdout as a JSON object.
func decodeStdout(t *testing.T, res result) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal([]byte(res.stdout), &out); err != nil {
		t.Fatalf("stdout is not JSON: %v (stdout: %q)", err, res.stdout)
	}
	return out
}

// wantContains fails the test for each substring missing from got.
func wantContains(t *testing.T, name, got string, subs ...string) {
	t.Helper()

	for _, sub := range subs {
		if !strings.Contains(got, sub) {
			t.Errorf("%s = %q, want it to contain %q", name, got, sub)
		}
	}
}

func TestRun_GreetDefault(t *testing.T) {
	t.Parallel()

	res := runCLI(t, context.Background(), validEnv("https://httpbin.org"), "greet")

	wantCode(t, res, exitOK)
	if res.stdout != "Hello, world!\n" {
		t.Errorf("stdout = %q, want \"Hello, world!\\n\"", res.stdout)
	}
}

func TestRun_GreetName(t *testing.T) {
	t.Parallel()

	res := runCLI(t, context.Background(), validEnv("https://httpbin.org"), "greet", "Ada")

	wantCode(t, res, exitOK)
	if res.stdout != "Hello, Ada!\n" {
		t.Errorf("stdout = %q, want \"Hello, Ada!\\n\"", res.stdout)
	}
}

func TestRun_GreetBlankName(t *testing.T) {
	t.Parallel()

	res := runCLI(t, context.Background(), validEnv("https://httpbin.org"), "greet", "  ")

	wantCode(t, res, exitFailure)
	wantContains(t, "stderr", res.stderr, "name is required")
}

func TestRun_MissingRequiredSetting(t *testing.T) {
	t.Parallel()

	res := runCLI(t, context.Background(), []string{"APP_API_BASE_URL=https://httpbin.org"}, "greet")

	if res.code == exitOK {
		t.Fatalf("exit code = %d, want non-zero", res.code)
	}
	wantContains(t, "stderr", res.stderr, "APP_ENV")
	if res.stdout != "" {
		t.Errorf("stdout = %q, want empty", res.stdout)
	}
}

func TestRun_InvalidSetting(t *testing.T) {
	t.Parallel()

	env := append(validEnv("not a url"), "APP_LOG_FORMAT=xml")
	res := runCLI(t, context.Background(), env, "greet")

	wantCode(t, res, exitFailure)
	wantContains(t, "stderr", res.stderr, "api_base_url", "log.format")
}

func TestRun_MissingConfigFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	res := runCLI(t, context.Background(), validEnv("https://httpbin.org"), "--config", missing, "greet")

	wantCode(t, res, exitFailure)
	wantContains(t, "stderr", res.stderr, "nope.yaml")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	res := runCLI(t, context.Background(), validEnv("https://httpbin.org"), "deploy")

	wantCode(t, res, exitFailure)
	wantContains(t, "stderr", res.stderr, "error:")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	res := runCLI(t, context.Background(), nil, "--help")

	wantCode(t, res, exitOK)
	wantContains(t, "stdout", res.stdout, "greet", "ping", "get")
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	res := runCLI(t, context.Background(), nil, "--version")

	wantCode(t, res, exitOK)
	wantContains(t, "stdout", res.stdout, version)
}

func TestRun_DebugEnablesDebugLogs(t *testing.T) {
	t.Parallel()

	// validEnv sets APP_LOG_LEVEL=error; APP_DEBUG must still surface debug logs.
	env := append(validEnv("https://httpbin.org"), "APP_DEBUG=true")
	res := runCLI(t, context.Background(), env, "greet")

	wantCode(t, res, exitOK)
	wantContains(t, "stderr", res.stderr, "settings loaded")
}

func TestRun_PingSuccess(t *testing.T) {
	t.Parallel()

	srv := echoServer(t)
	res := runCLI(t, context.Background(), validEnv(srv.URL), "ping")

	wantCode(t, res, exitOK)

	out := decodeStdout(t, res)
	if out["success"] != true {
		t.Errorf("success = %v, want true", out["success"])
	}
	if out["status"] != float64(http.StatusOK) {
		t.Errorf("status = %v, want %d", out["status"], http.StatusOK)
	}
	if want := "Successfully connected to " + srv.URL + "/get"; out["message"] != want {
		t.Errorf("message = %v, want %q", out["message"], want)
	}
}

func TestRun_PingBaseURLWithTrailingSlash(t *testing.T) {
	t.Parallel()

	srv := echoServer(t)
	res := runCLI(t, context.Background(), validEnv(srv.URL+"/"), "ping")

	wantCode(t, res, exitOK)

	out := decodeStdout(t, res)
	if want := "Successfully connected to " + srv.URL + "/get"; out["message"] != want {
		t.Errorf("message = %v, want %q", out["message"], want)
	}
}

func TestRun_PingFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	res := runCLI(t, context.Background(), validEnv(srv.URL), "ping")

	wantCode(t, res, exitFailure)

	out := decodeStdout(t, res)
	if out["success"] != false {
		t.Errorf("success = %v, want false", out["success"])
	}
	if out["status"] != float64(http.StatusServiceUnavailable) {
		t.Errorf("status = %v, want %d", out["status"], http.StatusServiceUnavailable)
	}
	msg, _ := out["message"].(string)
	wantContains(t, "message", msg, "Connection to "+srv.URL+"/get failed")
}

func TestRun_GetWithParams(t *testing.T) {
	t.Parallel()

	srv := echoServer(t)
	res := runCLI(t, context.Background(), validEnv(srv.URL), "get", "--param", "a=1", "-p", "b= two ")

	wantCode(t, res, exitOK)

	out := decodeStdout(t, res)
	if want := map[string]any{"a": "1", "b": "two"}; !reflect.DeepEqual(out["args"], want) {
		t.Errorf("args = %v, want %v", out["args"], want)
	}
}

func TestRun_GetInvalidParam(t *testing.T) {
	t.Parallel()

	res := runCLI(t, context.Background(), validEnv("https://httpbin.org"), "get", "--param", "novalue")

	wantCode(t, res, exitFailure)
	wantContains(t, "stderr", res.stderr, "invalid parameter")
	if res.stdout != "" {
		t.Errorf("stdout = %q, want empty", res.stdout)
	}
}

func TestRun_GetUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	res := runCLI(t, context.Background(), validEnv(srv.URL), "get")

	wantCode(t, res, exitFailure)
	wantContains(t, "stderr", res.stderr, "GET request to "+srv.URL+"/get failed")
}

func TestRun_Interrupted(t *testing.T) {
	t.Parallel()

	srv := echoServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := runCLI(t, ctx, validEnv(srv.URL), "ping")

	wantCode(t, res, exitInterrupted)
	wantContains(t, "stderr", res.stderr, "operation cancelled")
}

// panicService fails every call by panicking.
type panicService struct{}

func (panicService) Greet(context.Context, string) (string, error) { panic("boom") }
func (panicService) Ping(context.Context) domain.PingResult        { panic("boom") }
func (panicService) Get(context.Context, url.Values) (map[string]any, error) {
	panic("boom")
}

func TestExecute_RecoversPanic(t *testing.T) {
	t.Parallel()

	var cli CLI
	kctx, exit, err := parse(&cli, []string{"greet"}, io.Discard, io.Discard)
	if err != nil || exit != nil {
		t.Fatalf("parse(greet) = exit %v, err %v, want a command", exit, err)
	}

	var stdout, stderr, logs bytes.Buffer
	sess := &session{
		ctx:    context.Background(),
		svc:    panicService{},
		stdout: &stdout,
		logger: logging.New("error", "json", &logs),
	}

	if code := execute(context.Background(), kctx, sess, &stderr); code != exitFailure {
		t.Errorf("execute() = %d, want %d", code, exitFailure)
	}
	wantContains(t, "stderr", stderr.String(), "unexpected panic: boom")
	wantContains(t, "logs", logs.String(), "panic recovered", `"stack"`)
}
