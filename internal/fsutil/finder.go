// Package fsutil provides file system helpers for manifest discovery.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindManifests resolves a path to the list of manifest files it names. A
// regular file is returned as-is; a directory is walked recursively for
// files with the given extension. The result is sorted so catalog merging
// stays deterministic across platforms.
func FindManifests(path string, extension string) ([]string, error) {
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("manifest path %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
