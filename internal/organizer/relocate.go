package organizer

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"extsort/internal/fault"
	"extsort/internal/fileutil"
	"extsort/internal/logging"
)

// Relocator moves, or simulates moving, single files into label folders.
type Relocator struct {
	logger   *slog.Logger
	resolver *Resolver
}

// NewRelocator builds a relocator around the resolver that owns the run's
// reservations. A nil resolver gets a fresh one.
func NewRelocator(logger *slog.Logger, resolver *Resolver) *Relocator {
	if logger == nil {
		logger = logging.NewNop()
	}
	if resolver == nil {
		resolver = NewResolver()
	}
	return &Relocator{logger: logger, resolver: resolver}
}

// Relocate moves src into destDir under a non-colliding name. In dry-run mode
// nothing on disk changes, not even the creation of destDir; the chosen
// destination is reserved so later files in the run see it as taken.
func (r *Relocator) Relocate(src, destDir string, dryRun bool) (Outcome, error) {
	outcome := Outcome{Source: src, Label: Classify(src)}
	if info, err := os.Stat(src); err == nil {
		outcome.Size = info.Size()
	}

	desired := filepath.Join(destDir, filepath.Base(src))

	if dryRun {
		// A regular file squatting on the label path makes MkdirAll fail in a
		// real run; report the same failure instead of a confusing lstat error.
		if info, err := os.Stat(destDir); err == nil && !info.IsDir() {
			outcome.Action = ActionFailed
			outcome.Err = fault.Wrap(fault.ErrMoveFailure, "organizer", "create label folder", destDir,
				&fs.PathError{Op: "mkdir", Path: destDir, Err: syscall.ENOTDIR})
			return outcome, outcome.Err
		}
		final, err := r.resolver.Resolve(desired)
		if err != nil {
			outcome.Action = ActionFailed
			outcome.Err = fault.Wrap(fault.ErrMoveFailure, "organizer", "resolve destination", destDir, err)
			return outcome, outcome.Err
		}
		r.resolver.Reserve(final)
		outcome.Destination = final
		outcome.Action = ActionSimulated
		r.logger.Info("DRY-RUN: would move file",
			logging.String("source", src),
			logging.String("destination", final),
		)
		return outcome, nil
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		outcome.Action = ActionFailed
		outcome.Err = fault.Wrap(fault.ErrMoveFailure, "organizer", "create label folder", destDir, err)
		return outcome, outcome.Err
	}
	final, err := r.resolver.Resolve(desired)
	if err != nil {
		outcome.Action = ActionFailed
		outcome.Err = fault.Wrap(fault.ErrMoveFailure, "organizer", "resolve destination", destDir, err)
		return outcome, outcome.Err
	}
	outcome.Destination = final

	if err := r.move(src, final); err != nil {
		outcome.Action = ActionFailed
		outcome.Err = err
		return outcome, err
	}

	outcome.Action = ActionMoved
	r.logger.Info("moved file",
		logging.String("source", src),
		logging.String("destination", final),
		logging.Int64("bytes", outcome.Size),
	)
	return outcome, nil
}

func (r *Relocator) move(src, dst string) error {
	renameErr := renameFile(src, dst)
	if renameErr == nil {
		return nil
	}
	if !isCrossDevice(renameErr) {
		return fault.Wrap(fault.ErrMoveFailure, "organizer", "rename", src, renameErr)
	}

	r.logger.Debug("rename crossed devices; copying instead",
		logging.String("source", src),
		logging.String("destination", dst),
	)
	if err := fileutil.CopyFile(src, dst); err != nil {
		return fault.Wrap(fault.ErrMoveFailure, "organizer", "copy across devices", src, err)
	}
	if err := os.Remove(src); err != nil {
		r.logger.Warn("failed to remove source after copy; file now exists twice",
			logging.String("source", src),
			logging.String("destination", dst),
			logging.Error(err),
		)
	}
	return nil
}
