package organizer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"extsort/internal/fault"
	"extsort/internal/logging"
	"extsort/internal/organizer"
	"extsort/internal/testsupport"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be absent, stat err=%v", path, err)
	}
}

func TestRelocateMovesIntoLabelFolder(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{"cat.jpg": "meow"})
	src := filepath.Join(root, "cat.jpg")
	destDir := filepath.Join(root, "jpg")

	outcome, err := organizer.NewRelocator(logging.NewNop(), nil).Relocate(src, destDir, false)
	if err != nil {
		t.Fatalf("Relocate: %v", err)
	}
	want := filepath.Join(destDir, "cat.jpg")
	if outcome.Action != organizer.ActionMoved || outcome.Destination != want {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if outcome.Label != "jpg" || outcome.Size != 4 {
		t.Fatalf("unexpected label/size: %+v", outcome)
	}
	if got := readFile(t, want); got != "meow" {
		t.Fatalf("content mismatch: %q", got)
	}
	assertMissing(t, src)
}

func TestRelocateRenamesOnCollision(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"notes.txt":     "new",
		"txt/notes.txt": "old",
	})

	outcome, err := organizer.NewRelocator(nil, nil).Relocate(filepath.Join(root, "notes.txt"), filepath.Join(root, "txt"), false)
	if err != nil {
		t.Fatalf("Relocate: %v", err)
	}
	want := filepath.Join(root, "txt", "notes(1).txt")
	if outcome.Destination != want {
		t.Fatalf("expected %s, got %s", want, outcome.Destination)
	}
	if got := readFile(t, filepath.Join(root, "txt", "notes.txt")); got != "old" {
		t.Fatalf("existing file overwritten: %q", got)
	}
	if got := readFile(t, want); got != "new" {
		t.Fatalf("moved content mismatch: %q", got)
	}
}

func TestRelocateDryRunLeavesDiskUntouched(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{"report.pdf": "pdf"})
	before := testsupport.Snapshot(t, root)

	relocator := organizer.NewRelocator(nil, organizer.NewResolver())
	outcome, err := relocator.Relocate(filepath.Join(root, "report.pdf"), filepath.Join(root, "pdf"), true)
	if err != nil {
		t.Fatalf("Relocate: %v", err)
	}
	if outcome.Action != organizer.ActionSimulated {
		t.Fatalf("expected simulated, got %s", outcome.Action)
	}
	if want := filepath.Join(root, "pdf", "report.pdf"); outcome.Destination != want {
		t.Fatalf("expected %s, got %s", want, outcome.Destination)
	}
	after := testsupport.Snapshot(t, root)
	if len(before) != len(after) {
		t.Fatalf("dry run changed tree: before=%v after=%v", before, after)
	}
	for path, content := range before {
		if after[path] != content {
			t.Fatalf("dry run changed %s", path)
		}
	}
}

func TestRelocateDryRunReservesDestinations(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"a/notes.txt": "a",
		"b/notes.txt": "b",
	})
	relocator := organizer.NewRelocator(nil, organizer.NewResolver())
	destDir := filepath.Join(root, "txt")

	first, err := relocator.Relocate(filepath.Join(root, "a", "notes.txt"), destDir, true)
	if err != nil {
		t.Fatalf("Relocate first: %v", err)
	}
	second, err := relocator.Relocate(filepath.Join(root, "b", "notes.txt"), destDir, true)
	if err != nil {
		t.Fatalf("Relocate second: %v", err)
	}
	if first.Destination != filepath.Join(destDir, "notes.txt") {
		t.Fatalf("unexpected first destination %s", first.Destination)
	}
	if second.Destination != filepath.Join(destDir, "notes(1).txt") {
		t.Fatalf("unexpected second destination %s", second.Destination)
	}
}

func TestRelocateMissingSourceFails(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "ghost.txt")

	outcome, err := organizer.NewRelocator(nil, nil).Relocate(src, filepath.Join(root, "txt"), false)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !errors.Is(err, fault.ErrMoveFailure) {
		t.Fatalf("expected ErrMoveFailure, got %v", err)
	}
	if outcome.Action != organizer.ActionFailed || outcome.Err == nil {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestRelocateRenameFailureIsReported(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{"cat.jpg": "meow"})
	src := filepath.Join(root, "cat.jpg")

	boom := errors.New("permission denied")
	restore := organizer.SetRenameForTests(func(string, string) error { return boom })
	defer restore()

	_, err := organizer.NewRelocator(nil, nil).Relocate(src, filepath.Join(root, "jpg"), false)
	if !errors.Is(err, boom) || !errors.Is(err, fault.ErrMoveFailure) {
		t.Fatalf("expected wrapped rename error, got %v", err)
	}
	if got := readFile(t, src); got != "meow" {
		t.Fatalf("source should be intact, got %q", got)
	}
}

func TestRelocateDryRunReportsFileOnLabelPath(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"a.txt": "a",
		"txt":   "not a folder",
	})
	src := filepath.Join(root, "a.txt")
	destDir := filepath.Join(root, "txt")

	simulated, dryErr := organizer.NewRelocator(nil, nil).Relocate(src, destDir, true)
	if !errors.Is(dryErr, fault.ErrMoveFailure) || simulated.Action != organizer.ActionFailed {
		t.Fatalf("expected dry-run failure, got %+v err=%v", simulated, dryErr)
	}
	if got := fault.PathOf(dryErr); got != destDir {
		t.Fatalf("expected failure to name %s, got %q", destDir, got)
	}
	if got := readFile(t, src); got != "a" {
		t.Fatalf("dry run touched source: %q", got)
	}

	_, realErr := organizer.NewRelocator(nil, nil).Relocate(src, destDir, false)
	if !errors.Is(realErr, fault.ErrMoveFailure) {
		t.Fatalf("expected real run to fail too, got %v", realErr)
	}
	if dryErr.Error() != realErr.Error() {
		t.Fatalf("dry run should predict the real failure:\n dry:  %v\n real: %v", dryErr, realErr)
	}
}
