package targetlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"extsort/internal/fault"
)

var errHeld = errors.New("held by another extsort run")

// Lock is a held lock on one target directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file used for target inside lockDir.
func PathFor(lockDir, target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve target: %w", err)
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return filepath.Join(lockDir, hex.EncodeToString(sum[:16])+".lock"), nil
}

// Acquire takes the lock for target without blocking. A lock already held by
// another run yields fault.ErrLocked.
func Acquire(lockDir, target string) (*Lock, error) {
	path, err := PathFor(lockDir, target)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fault.Wrap(fault.ErrLocked, "targetlock", "acquire", target, errHeld)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path reports the lock file backing l.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release unlocks the target. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
