package fault_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"extsort/internal/fault"
)

func TestWrapKeepsKindCauseAndPath(t *testing.T) {
	err := fault.Wrap(fault.ErrMoveFailure, "organizer", "rename", "/data/cat.jpg", fs.ErrPermission)
	if !errors.Is(err, fault.ErrMoveFailure) {
		t.Fatalf("expected kind to match, got %v", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected cause to match, got %v", err)
	}
	want := "move failure: organizer: rename /data/cat.jpg: permission denied"
	if err.Error() != want {
		t.Fatalf("unexpected message: got %q want %q", err.Error(), want)
	}
	if got := fault.PathOf(err); got != "/data/cat.jpg" {
		t.Fatalf("PathOf = %q", got)
	}
}

func TestWrapDropsEmptyParts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"kind only", fault.Wrap(fault.ErrLocked, "", "", "", nil), "target locked"},
		{"no op", fault.Wrap(fault.ErrInvalidTarget, "organizer", "", "/srv/in", nil), "invalid target: organizer: /srv/in"},
		{"no path", fault.Wrap(fault.ErrConfiguration, "config", "load", "", errors.New("bad toml")), "configuration error: config: load: bad toml"},
		{"nil kind", fault.Wrap(nil, "organizer", "copy", "", nil), "move failure: organizer: copy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("organize: %w", fault.Wrap(fault.ErrLocked, "targetlock", "acquire", "/x", nil))
	if fault.KindOf(wrapped) != fault.ErrLocked {
		t.Fatalf("expected ErrLocked through fmt wrapping, got %v", fault.KindOf(wrapped))
	}
	plain := fmt.Errorf("%w: 2 of 3 files failed to move", fault.ErrMoveFailure)
	if fault.KindOf(plain) != fault.ErrMoveFailure {
		t.Fatalf("expected bare sentinel to classify, got %v", fault.KindOf(plain))
	}
	if fault.KindOf(errors.New("boom")) != nil {
		t.Fatal("expected untagged error to have no kind")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{fault.Wrap(fault.ErrConfiguration, "config", "load", "/etc/extsort.toml", nil), 2},
		{fmt.Errorf("run: %w", fault.Wrap(fault.ErrConfiguration, "logging", "", "", nil)), 2},
		{fault.Wrap(fault.ErrInvalidTarget, "organizer", "", "", nil), 1},
		{errors.New("boom"), 1},
	}
	for _, tt := range tests {
		if got := fault.ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
