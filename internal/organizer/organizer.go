package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"extsort/internal/fault"
	"extsort/internal/logging"
)

var errNotDirectory = errors.New("not a directory")

// Organizer sorts the files of a directory into label folders.
type Organizer struct {
	logger *slog.Logger
}

// New constructs an organizer that reports through logger. A nil logger
// discards output.
func New(logger *slog.Logger) *Organizer {
	return &Organizer{logger: logging.NewComponentLogger(logger, "organizer")}
}

// Organize relocates the files under target according to opts.
//
// An invalid target is logged and reported as fault.ErrInvalidTarget with a
// zero Result; nothing is scanned. Per-file failures are recorded on the Result
// and do not stop the run unless opts.StopOnError is set, in which case the
// partial Result is returned with the failure. Cancelling ctx stops the run
// between files.
func (o *Organizer) Organize(ctx context.Context, target string, opts Options) (Result, error) {
	logger := logging.WithContext(ctx, o.logger)
	result := Result{DryRun: opts.DryRun}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		logger.Error("target is not a directory", logging.String("path", target))
		if err == nil {
			err = errNotDirectory
		}
		return result, fault.Wrap(fault.ErrInvalidTarget, "organizer", "validate target", target, err)
	}

	files, err := Walk(target, opts.Recursive, logger)
	if err != nil {
		logger.Error("failed to scan target", logging.String("path", target), logging.Error(err))
		return result, fmt.Errorf("scan %s: %w", target, err)
	}
	result.Scanned = len(files)
	logger.Info("found files to process",
		logging.Int("files", len(files)),
		logging.Bool("recursive", opts.Recursive),
	)

	excluded := excludeSet(opts.Exclude)
	relocator := NewRelocator(logger, NewResolver())

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			logger.Warn("organize cancelled; remaining files left in place",
				logging.Int("processed", result.Processed),
				logging.Int("remaining", len(files)-len(result.Outcomes)),
			)
			return result, err
		}

		label := Classify(file)
		destDir := destinationDir(target, file, label, opts.KeepTopLevel)

		if reason := skipReason(target, file, destDir, label, opts, excluded); reason != "" {
			logger.Debug("skipping file",
				logging.String("source", file),
				logging.String("reason", reason),
			)
			result.record(Outcome{Source: file, Label: label, Action: ActionSkipped, Reason: reason})
			continue
		}

		outcome, err := relocator.Relocate(file, destDir, opts.DryRun)
		result.record(outcome)
		if err != nil {
			logger.Error("failed to move file",
				logging.String("source", file),
				logging.String("label", string(label)),
				logging.Error(err),
			)
			if opts.StopOnError {
				return result, err
			}
		}
	}

	logger.Info("completed",
		logging.Int("processed", result.Processed),
		logging.Int("skipped", result.Skipped),
		logging.Int("failed", result.Failed),
		logging.Bool("dry_run", opts.DryRun),
	)
	return result, nil
}

// destinationDir applies the placement policy: label folders at the target
// root, or next to each file.
func destinationDir(target, file string, label Label, keepTopLevel bool) string {
	if keepTopLevel {
		return filepath.Join(target, string(label))
	}
	return filepath.Join(filepath.Dir(file), string(label))
}

func skipReason(target, file, destDir string, label Label, opts Options, excluded map[string]struct{}) string {
	if len(excluded) > 0 {
		if abs, err := filepath.Abs(file); err == nil {
			if _, ok := excluded[abs]; ok {
				return "excluded"
			}
		}
	}
	parent := filepath.Clean(filepath.Dir(file))
	if parent == filepath.Clean(destDir) {
		return "already in label folder"
	}
	// Only in-place mode can nest a label folder inside itself; with
	// KeepTopLevel every file gathers at the target root whatever its depth.
	if !opts.KeepTopLevel && opts.SkipLabelFolders && parent != filepath.Clean(target) && filepath.Base(parent) == string(label) {
		return "inside a folder named after its label"
	}
	return ""
}

func excludeSet(paths []string) map[string]struct{} {
	if len(paths) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		set[abs] = struct{}{}
	}
	return set
}
