package organizer

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"extsort/internal/logging"
)

// Walk returns the files under root as a snapshot taken before any move.
// Regular files and symlinks resolving to regular files are included;
// directories, symlinked directories, broken links, and special files are not.
// Recursive walks do not follow symlinked directories below root, though root
// itself may be a symlink to a directory. Entries that vanish or
// cannot be read below root are logged at debug level and skipped.
func Walk(root string, recursive bool, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		files := make([]string, 0, len(entries))
		for _, entry := range entries {
			path := filepath.Join(root, entry.Name())
			if isFileEntry(path, entry) {
				files = append(files, path)
			}
		}
		return files, nil
	}

	// WalkDir lstats its root; the trailing separator makes a symlinked root
	// resolve while filepath.Join keeps the child paths clean.
	walkRoot := root
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	var files []string
	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			logger.Debug("skipping unreadable entry", logging.String("path", path), logging.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if isFileEntry(path, d) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func isFileEntry(path string, entry fs.DirEntry) bool {
	mode := entry.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
