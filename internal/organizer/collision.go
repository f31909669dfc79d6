package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolver finds destination paths that do not collide with existing entries.
//
// A path counts as taken when something exists there on disk or when it was
// reserved earlier in the same run. Dry runs reserve every simulated
// destination so two files with the same name are previewed as "a.txt" and
// "a(1).txt". The check and the later move are not atomic; another process can
// still create the chosen path in between.
type Resolver struct {
	reserved map[string]struct{}
}

// NewResolver creates a resolver with no reservations.
func NewResolver() *Resolver {
	return &Resolver{reserved: make(map[string]struct{})}
}

// Resolve returns dest when it is free, otherwise the first free candidate of
// the form "stem(N)suffix" for N = 1, 2, ...
func (r *Resolver) Resolve(dest string) (string, error) {
	taken, err := r.taken(dest)
	if err != nil {
		return "", err
	}
	if !taken {
		return dest, nil
	}

	dir := filepath.Dir(dest)
	stem, suffix := splitName(filepath.Base(dest))
	for idx := 1; ; idx++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, idx, suffix))
		taken, err := r.taken(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// Reserve marks path as taken for the rest of the run.
func (r *Resolver) Reserve(path string) {
	if r.reserved == nil {
		r.reserved = make(map[string]struct{})
	}
	r.reserved[filepath.Clean(path)] = struct{}{}
}

func (r *Resolver) taken(path string) (bool, error) {
	if _, ok := r.reserved[filepath.Clean(path)]; ok {
		return true, nil
	}
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// splitName separates a base name into stem and suffix at the last dot. Names
// whose only dot is leading or trailing keep the whole name as the stem.
func splitName(base string) (string, string) {
	idx := strings.LastIndex(base, ".")
	if idx <= 0 || idx == len(base)-1 {
		return base, ""
	}
	return base[:idx], base[idx:]
}
