package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"extsort/internal/config"
	"extsort/internal/fault"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Create or check the extsort configuration file",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var pathFlag string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a commented sample configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := sampleConfigDestination(pathFlag)
			if err != nil {
				return err
			}
			if !overwrite {
				_, statErr := os.Stat(dest)
				switch {
				case statErr == nil:
					return fmt.Errorf("%s already exists; pass --overwrite to replace it", dest)
				case !errors.Is(statErr, fs.ErrNotExist):
					return fmt.Errorf("inspect %s: %w", dest, statErr)
				}
			}
			if err := config.CreateSample(dest); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Where to write the file (default ~/.config/extsort/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

func sampleConfigDestination(flagValue string) (string, error) {
	if value := strings.TrimSpace(flagValue); value != "" {
		dest, err := config.ExpandPath(value)
		if err != nil {
			return "", fmt.Errorf("resolve --path: %w", err)
		}
		return dest, nil
	}
	dest, err := config.DefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("locate default config path: %w", err)
	}
	return dest, nil
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Load the configuration and report problems",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(ctx.configFlagValue())
			if err != nil {
				return fault.Wrap(fault.ErrConfiguration, "config", "validate", ctx.configFlagValue(), err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "No file found; built-in defaults were used")
			}
			fmt.Fprintf(out, "Log sinks: %s\n", strings.Join(cfg.Logging.Sinks, ", "))
			if cfg.HasSink(config.SinkFile) {
				fmt.Fprintf(out, "Log file: %s\n", cfg.Logging.File)
			}
			fmt.Fprintf(out, "Lock directory: %s\n", cfg.LockDir())
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
