package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jsamuelsen11/go-cli-template/internal/platform/config"
)

// std is the process-wide bootstrapper behind Setup and Close.
var std Bootstrapper

// Setup configures the process-wide logger from cfg and installs it as
// slog.Default. Records go to console and, when cfg.File is set, to a
// rotating log file.
//
// Only the first call configures anything. Later calls return the logger
// built by the first one, so sinks are never duplicated.
func Setup(cfg config.LogConfig, console io.Writer) (*slog.Logger, error) {
	logger, err := std.Setup(cfg, console)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// Close flushes and closes the file sink opened by Setup, if any.
func Close() error {
	return std.Close()
}

// Bootstrapper builds a logger at most once. The zero value is ready to use.
// Most code should call the package-level Setup instead.
type Bootstrapper struct {
	once   sync.Once
	mu     sync.Mutex
	logger *slog.Logger
	sink   io.Closer
	err    error
}

// Setup builds the logger on the first call and returns it on every call.
// If the first call fails, every later call returns the same error.
func (b *Bootstrapper) Setup(cfg config.LogConfig, console io.Writer) (*slog.Logger, error) {
	b.once.Do(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.logger, b.sink, b.err = build(cfg, console)
	})
	return b.logger, b.err
}

// Close releases the file sink. Safe to call more than once.
func (b *Bootstrapper) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sink == nil {
		return nil
	}
	err := b.sink.Close()
	b.sink = nil
	return err
}

// build assembles the console and optional file sinks into one logger.
func build(cfg config.LogConfig, console io.Writer) (*slog.Logger, io.Closer, error) {
	if console == nil {
		console = os.Stderr
	}

	if cfg.File == "" {
		return New(cfg.Level, cfg.Format, console), nil, nil
	}

	if cfg.MaxSizeMB < 1 {
		return nil, nil, errors.New("logging: max size must be at least 1 MB when a log file is set")
	}

	file := &lumberjack.Logger{
		Filename:  cfg.File,
		MaxSize:   cfg.MaxSizeMB,
		MaxAge:    cfg.MaxAgeDays,
		Compress:  cfg.Compress,
		LocalTime: true,
	}

	return New(cfg.Level, cfg.Format, io.MultiWriter(console, file)), file, nil
}
