package targetlock_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"extsort/internal/fault"
	"extsort/internal/targetlock"
)

func TestAcquireRejectsConcurrentRun(t *testing.T) {
	lockDir := filepath.Join(t.TempDir(), "locks")
	target := t.TempDir()

	first, err := targetlock.Acquire(lockDir, target)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer first.Release()

	_, err = targetlock.Acquire(lockDir, target)
	if !errors.Is(err, fault.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if got := fault.PathOf(err); got != target {
		t.Fatalf("expected locked error to name %s, got %q", target, got)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	second, err := targetlock.Acquire(lockDir, target)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	if err := second.Release(); err != nil {
		t.Fatalf("Release second: %v", err)
	}
}

func TestLockFileLivesOutsideTarget(t *testing.T) {
	lockDir := filepath.Join(t.TempDir(), "locks")
	target := t.TempDir()

	lock, err := targetlock.Acquire(lockDir, target)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer lock.Release()

	if filepath.Dir(lock.Path()) != lockDir || !strings.HasSuffix(lock.Path(), ".lock") {
		t.Fatalf("unexpected lock path %s", lock.Path())
	}
	entries, err := os.ReadDir(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("target should stay empty, found %d entries", len(entries))
	}
}

func TestPathForIsStablePerTarget(t *testing.T) {
	lockDir := t.TempDir()
	a, err := targetlock.PathFor(lockDir, "/srv/inbox")
	if err != nil {
		t.Fatalf("PathFor: %v", err)
	}
	again, _ := targetlock.PathFor(lockDir, "/srv/inbox/")
	other, _ := targetlock.PathFor(lockDir, "/srv/outbox")
	if a != again {
		t.Fatalf("expected stable path, got %s and %s", a, again)
	}
	if a == other {
		t.Fatalf("distinct targets share lock %s", a)
	}
}

func TestReleaseNilLock(t *testing.T) {
	var lock *targetlock.Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("Release on nil: %v", err)
	}
}
