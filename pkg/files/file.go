// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type File struct {
	path    string
	relPath string
}

func NewFile(path, dir string) (*File, error) {
	relPath, err := filepath.Rel(dir, path)
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", path, err)
	}
	return &File{path: path, relPath: relPath}, nil
}

// NewMatchingFiles lists regular entries of dir (non-recursively) whose
// names match pattern, sorted by name. Like a shell glob, '*' does not
// match a leading dot unless pattern starts with one.
func NewMatchingFiles(dir, pattern string) ([]*File, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("Matching pattern '%s': %s", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, FilesystemError{Op: "Listing directory", Path: dir, Err: err}
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(pattern, ".") {
			continue
		}
		matched, err := filepath.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("Matching pattern '%s': %s", pattern, err)
		}
		if matched {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	var result []*File

	for _, name := range names {
		file, err := NewFile(filepath.Join(dir, name), dir)
		if err != nil {
			return nil, err
		}
		result = append(result, file)
	}

	return result, nil
}

func (r *File) Path() string         { return r.path }
func (r *File) RelativePath() string { return r.relPath }

// Stem is the base name without its final extension (eg "a_layer" for "x/a_layer.py")
func (r *File) Stem() string {
	name := filepath.Base(r.relPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
