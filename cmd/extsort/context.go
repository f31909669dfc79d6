package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"extsort/internal/config"
	"extsort/internal/fault"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = fault.Wrap(fault.ErrConfiguration, "config", "load", "", err)
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = fault.Wrap(fault.ErrConfiguration, "config", "prepare directories", "", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
