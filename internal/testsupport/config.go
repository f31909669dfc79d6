package testsupport

import (
	"path/filepath"
	"testing"

	"extsort/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted in a per-test temp directory. Logging
// defaults to the file sink inside that directory so tests stay quiet.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Logging.Sinks = []string{config.SinkFile}
	cfg.Logging.File = filepath.Join(base, "logs", "extsort.log")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSinks overrides the enabled log sinks on the test config.
func WithSinks(sinks ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Sinks = sinks
	}
}
