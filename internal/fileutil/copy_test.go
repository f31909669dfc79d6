package fileutil_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"extsort/internal/fileutil"
	"extsort/internal/testsupport"
)

func TestCopyFilePreservesContentAndMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "report.pdf")
	if err := os.WriteFile(src, []byte("sample: report.pdf"), 0o600); err != nil {
		t.Fatalf("write source: %v", err)
	}
	dst := filepath.Join(dir, "copy.pdf")

	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(got) != "sample: report.pdf" {
		t.Fatalf("unexpected content %q", got)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat copy: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", info.Mode().Perm())
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("source must survive a copy: %v", err)
	}
}

func TestCopyFileRefusesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(src, []byte("new"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
		t.Fatalf("write destination: %v", err)
	}

	err := fileutil.CopyFile(src, dst)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected ErrExist, got %v", err)
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "old" {
		t.Fatalf("existing destination was modified: %q", got)
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := fileutil.CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "out"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out")); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatalf("expected no destination file, got %v", statErr)
	}
}

func TestCopyFileSpansMultipleBuffers(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "archive.tar.gz")
	const size = 3*32*1024 + 17
	testsupport.WriteFile(t, src, size)
	dst := filepath.Join(dir, "gz", "archive.tar.gz")
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat copy: %v", err)
	}
	if info.Size() != size {
		t.Fatalf("expected %d bytes, got %d", size, info.Size())
	}
}
