package organizer

import "os"

// renameFile is the move primitive used by the relocator.
// It is a package-level variable so tests can override it.
var renameFile = os.Rename

// SetRenameForTests overrides the rename primitive during tests.
func SetRenameForTests(fn func(oldpath, newpath string) error) func() {
	previous := renameFile
	renameFile = fn
	return func() {
		renameFile = previous
	}
}
