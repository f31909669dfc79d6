package main

import (
	"strings"
	"testing"
)

func TestDemoCommand(t *testing.T) {
	setupCLITestEnv(t)
	t.Setenv("TMPDIR", t.TempDir())

	out, stderr, err := runCLI(t, "demo")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	requireContains(t, out, "Dry-run: 7 files would be moved")
	requireContains(t, out, "Success: 7 files moved")
	requireContains(t, out, "gz/archive.tar.gz")
	requireContains(t, out, "txt/stuff (1).txt")
	requireContains(t, out, "Cleaning up demo directory")
	requireContains(t, stderr, "DRY-RUN: would move file")

	dir := demoDirFrom(t, out)
	requireMissing(t, dir)
}

func TestDemoCommandKeep(t *testing.T) {
	setupCLITestEnv(t)
	t.Setenv("TMPDIR", t.TempDir())

	out, _, err := runCLI(t, "demo", "--keep")
	if err != nil {
		t.Fatalf("demo --keep: %v", err)
	}
	requireContains(t, out, "Kept demo directory at")
	requireExists(t, demoDirFrom(t, out))
}

func demoDirFrom(t *testing.T, out string) string {
	t.Helper()
	const prefix = "Created demo dir: "
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	t.Fatalf("demo dir not reported in %q", out)
	return ""
}
