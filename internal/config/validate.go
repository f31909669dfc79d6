package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	for _, sink := range c.Logging.Sinks {
		switch sink {
		case SinkConsole, SinkFile:
		case SinkNone:
			if len(c.Logging.Sinks) > 1 {
				return errors.New("logging.sinks: \"none\" cannot be combined with other sinks")
			}
		default:
			return fmt.Errorf("logging.sinks: unsupported sink %q (use console, file, or none)", sink)
		}
	}
	if c.HasSink(SinkFile) && strings.TrimSpace(c.Logging.File) == "" {
		return errors.New("logging.file must be set when the file sink is enabled")
	}
	return nil
}
