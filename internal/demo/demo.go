// Package demo builds the sample directory used by `extsort demo`.
package demo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// SampleFiles lists the files written by Create. Mixed-case extensions, a
// double extension, an extensionless file and a name that already looks like
// a collision copy exercise every branch of the organizer.
var SampleFiles = []string{
	"cat.jpg",
	"dog.JPG",
	"report.pdf",
	"archive.tar.gz",
	"README",
	"notes.txt",
	"stuff (1).txt",
}

// Create writes the sample files into dir, creating it when needed. Each file
// holds "sample: <name>".
func Create(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create demo dir: %w", err)
	}
	for _, name := range SampleFiles {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("sample: "+name), 0o644); err != nil {
			return fmt.Errorf("write sample %s: %w", name, err)
		}
	}
	return nil
}

// Tree lists every entry below root as sorted, slash-separated relative paths.
func Tree(root string) ([]string, error) {
	var entries []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)
	return entries, nil
}
