package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"extsort/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	Sinks       []string
	FilePath    string
	Console     io.Writer
	Development bool
}

// New constructs a slog logger using the provided options. The returned closer
// releases the log file when the file sink is enabled; it is never nil.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	if format != "console" && format != "json" {
		return nil, nopCloser{}, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	addSource := opts.Development || level <= slog.LevelDebug
	sinks := defaultSlice(opts.Sinks, []string{config.SinkConsole})

	var handlers []slog.Handler
	var closers closerList
	for _, sink := range sinks {
		switch strings.ToLower(strings.TrimSpace(sink)) {
		case config.SinkConsole:
			w := opts.Console
			if w == nil {
				w = os.Stderr
			}
			handlers = append(handlers, newHandler(format, w, levelVar, addSource, shouldColorize(w)))
		case config.SinkFile:
			file, err := openLogFile(opts.FilePath)
			if err != nil {
				_ = closers.Close()
				return nil, nopCloser{}, err
			}
			closers = append(closers, file)
			handlers = append(handlers, newHandler(format, file, levelVar, addSource, false))
		case config.SinkNone:
		default:
			_ = closers.Close()
			return nil, nopCloser{}, fmt.Errorf("log sink: unsupported value %q", sink)
		}
	}

	return slog.New(newFanoutHandler(handlers...)), closers, nil
}

// NewFromConfig creates a logger using application config values. Verbose
// forces debug level regardless of the configured level. A nil console writes
// to stderr.
func NewFromConfig(cfg *config.Config, verbose bool, console io.Writer) (*slog.Logger, io.Closer, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", Sinks: []string{config.SinkConsole}, Console: console})
	}
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return New(Options{
		Level:    level,
		Format:   cfg.Logging.Format,
		Sinks:    cfg.Logging.Sinks,
		FilePath: cfg.Logging.File,
		Console:  console,
	})
}

func newHandler(format string, w io.Writer, lvl *slog.LevelVar, addSource, colorize bool) slog.Handler {
	if format == "json" {
		return newJSONHandler(w, lvl, addSource)
	}
	return newPrettyHandler(w, lvl, addSource, colorize)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultSlice(value []string, fallback []string) []string {
	if len(value) == 0 {
		cp := make([]string, len(fallback))
		copy(cp, fallback)
		return cp
	}
	cp := make([]string, len(value))
	copy(cp, value)
	return cp
}

func openLogFile(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("log file: path required for file sink")
	}
	if err := ensureLogDir(trimmed); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", trimmed, err)
	}
	return file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure log directory: %w", err)
	}
	return nil
}

func shouldColorize(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type closerList []io.Closer

func (c closerList) Close() error {
	var errs []error
	for _, closer := range c {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
