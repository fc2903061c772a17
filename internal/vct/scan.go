package vct

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Errors surfaced to callers. Per-file read and parse failures during bulk
// scans are never surfaced; these cover the path- and lookup-level cases.
var (
	ErrFolderNotFound = errors.New("folder does not exist")
	ErrMatchNotFound  = errors.New("match not found")
)

// ScanMatchFiles recursively enumerates every .json file under root in
// discovery order, following symlinks. A missing or unreadable root is an
// error before traversal begins; entries that fail mid-walk are skipped.
func ScanMatchFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, root)
	}

	var files []string
	visited := make(map[string]bool)

	var walk func(dir string)
	walk = func(dir string) {
		// Resolve the real directory so symlink cycles terminate.
		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil || visited[resolved] {
			return
		}
		visited[resolved] = true

		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			stat, err := os.Stat(path)
			if err != nil {
				continue
			}
			if stat.IsDir() {
				walk(path)
				continue
			}
			if filepath.Ext(path) == ".json" {
				files = append(files, path)
			}
		}
	}

	walk(root)
	return files, nil
}
