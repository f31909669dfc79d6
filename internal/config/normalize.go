package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("EXTSORT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv("EXTSORT_LOG_FILE"); ok && strings.TrimSpace(value) != "" {
		c.Logging.File = value
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	sinks := make([]string, 0, len(c.Logging.Sinks))
	seen := make(map[string]struct{}, len(c.Logging.Sinks))
	for _, sink := range c.Logging.Sinks {
		normalized := strings.ToLower(strings.TrimSpace(sink))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		sinks = append(sinks, normalized)
	}
	if len(sinks) == 0 {
		sinks = []string{SinkNone}
	}
	c.Logging.Sinks = sinks

	var err error
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
