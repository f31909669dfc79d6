package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"extsort/internal/config"
	"extsort/internal/fault"
	"extsort/internal/logging"
	"extsort/internal/organizer"
	"extsort/internal/targetlock"
)

type organizeFlags struct {
	recursive     bool
	dryRun        bool
	noTopLevel    bool
	includeSorted bool
	stopOnError   bool
	logFile       string
	noLogFile     bool
	verbose       bool
	logFormat     string
	summary       bool
	noLock        bool
}

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var flags organizeFlags

	cmd := &cobra.Command{
		Use:   "organize <target>",
		Short: "Move files into folders named after their extension",
		Long: `Organize scans the target directory and moves each file into a folder
named after its lowercased extension. Files without an extension go to
"no_extension". Name clashes are resolved as name(1).ext, name(2).ext, ...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runOrganize(cmd, cfg, args[0], flags)
		},
	}

	fs := cmd.Flags()
	fs.BoolVarP(&flags.recursive, "recursive", "r", false, "Descend into subdirectories")
	fs.BoolVarP(&flags.dryRun, "dry-run", "n", false, "Report planned moves without touching files")
	fs.BoolVar(&flags.noTopLevel, "no-top-level", false, "Create label folders next to each file instead of at the target root")
	fs.BoolVar(&flags.includeSorted, "include-sorted", false, "With --no-top-level, also move files that already sit in a folder named after their label")
	fs.BoolVar(&flags.stopOnError, "stop-on-error", false, "Abort on the first failed move")
	fs.StringVar(&flags.logFile, "log-file", "", "Append log lines to this file")
	fs.BoolVar(&flags.noLogFile, "no-log-file", false, "Disable the log file sink for this run")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	fs.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")
	fs.BoolVar(&flags.summary, "summary", false, "Print a per-label summary table")
	fs.BoolVar(&flags.noLock, "no-lock", false, "Skip the per-target lock")
	cmd.MarkFlagsMutuallyExclusive("log-file", "no-log-file")

	return cmd
}

func runOrganize(cmd *cobra.Command, cfg *config.Config, target string, flags organizeFlags) error {
	opts := organizeOptions(cmd, cfg, flags)

	logCfg, err := runLoggingConfig(cmd, cfg, flags)
	if err != nil {
		return err
	}
	logger, closer, err := logging.NewFromConfig(logCfg, flags.verbose, cmd.ErrOrStderr())
	if err != nil {
		return fault.Wrap(fault.ErrConfiguration, "logging", "open sinks", "", err)
	}
	defer closer.Close()

	if logCfg.HasSink(config.SinkFile) {
		opts.Exclude = append(opts.Exclude, logCfg.Logging.File)
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		absTarget = target
	}
	runCtx := logging.WithTarget(logging.WithRunID(cmd.Context(), uuid.NewString()), absTarget)
	logging.WithContext(runCtx, logger).Debug("starting organize",
		logging.Bool("recursive", opts.Recursive),
		logging.Bool("dry_run", opts.DryRun),
		logging.Bool("keep_top_level", opts.KeepTopLevel),
	)

	if !flags.noLock {
		lock, err := targetlock.Acquire(logCfg.LockDir(), absTarget)
		if err != nil {
			logging.WithContext(runCtx, logger).Error("could not lock target", logging.Error(err))
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("failed to release target lock", logging.Error(err))
			}
		}()
	}

	result, runErr := organizer.New(logger).Organize(runCtx, target, opts)
	if runErr != nil && result.Scanned == 0 {
		return runErr
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	if flags.summary {
		if table := renderSummaryTable(result); table != "" {
			fmt.Fprintln(out, table)
		}
	}
	fmt.Fprintln(out, renderResultLine(result, colorize))
	for _, failure := range result.Failures() {
		fmt.Fprintln(out, renderFailureLine(failure, colorize))
	}

	if runErr != nil {
		return runErr
	}
	if result.Failed > 0 {
		return fmt.Errorf("%w: %d of %d files failed to move", fault.ErrMoveFailure, result.Failed, result.Scanned)
	}
	return nil
}

// organizeOptions layers explicitly set flags over the configured defaults.
func organizeOptions(cmd *cobra.Command, cfg *config.Config, flags organizeFlags) organizer.Options {
	opts := organizer.Options{
		Recursive:        cfg.Organize.Recursive,
		DryRun:           cfg.Organize.DryRun,
		KeepTopLevel:     cfg.Organize.KeepTopLevel,
		SkipLabelFolders: cfg.Organize.SkipLabelFolders,
		StopOnError:      cfg.Organize.StopOnError,
	}
	changed := cmd.Flags().Changed
	if changed("recursive") {
		opts.Recursive = flags.recursive
	}
	if changed("dry-run") {
		opts.DryRun = flags.dryRun
	}
	if changed("no-top-level") {
		opts.KeepTopLevel = !flags.noTopLevel
	}
	if changed("include-sorted") {
		opts.SkipLabelFolders = !flags.includeSorted
	}
	if changed("stop-on-error") {
		opts.StopOnError = flags.stopOnError
	}
	return opts
}

// runLoggingConfig returns a copy of cfg with the per-run logging flags applied.
func runLoggingConfig(cmd *cobra.Command, cfg *config.Config, flags organizeFlags) (*config.Config, error) {
	runCfg := *cfg
	runCfg.Logging.Sinks = slices.Clone(cfg.Logging.Sinks)
	changed := cmd.Flags().Changed

	if changed("log-format") {
		runCfg.Logging.Format = strings.ToLower(strings.TrimSpace(flags.logFormat))
	}
	if changed("log-file") {
		path, err := config.ExpandPath(strings.TrimSpace(flags.logFile))
		if err != nil || path == "" {
			return nil, fault.Wrap(fault.ErrConfiguration, "logging", "--log-file", flags.logFile, err)
		}
		runCfg.Logging.File = path
		runCfg.Logging.Sinks = slices.DeleteFunc(runCfg.Logging.Sinks, func(s string) bool { return s == config.SinkNone })
		if !runCfg.HasSink(config.SinkFile) {
			runCfg.Logging.Sinks = append(runCfg.Logging.Sinks, config.SinkFile)
		}
	}
	if flags.noLogFile {
		runCfg.Logging.Sinks = slices.DeleteFunc(runCfg.Logging.Sinks, func(s string) bool { return s == config.SinkFile })
		if len(runCfg.Logging.Sinks) == 0 {
			runCfg.Logging.Sinks = []string{config.SinkNone}
		}
	}

	if err := runCfg.Validate(); err != nil {
		return nil, fault.Wrap(fault.ErrConfiguration, "logging", "validate flags", "", err)
	}
	return &runCfg, nil
}
