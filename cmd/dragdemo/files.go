package main

import (
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/justyntemme/dragdrop/internal/debug"
)

type fileEntry struct {
	Name  string
	Path  string
	IsDir bool
}

// listDir returns the direct children of path, directories first, sorted
// by name.
func listDir(path string) ([]fileEntry, error) {
	debug.Log(debug.DEMO, "listDir: reading %q", path)

	var entries []fileEntry
	var mu sync.Mutex

	conf := &fastwalk.Config{
		Follow: true,
	}
	pathLen := len(path)

	err := fastwalk.Walk(conf, path, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip errors, continue walking
		}

		// Skip the root directory itself
		if fullPath == path {
			return nil
		}

		// Only process direct children (depth 1)
		relStart := pathLen
		if relStart < len(fullPath) && (fullPath[relStart] == '/' || fullPath[relStart] == '\\') {
			relStart++
		}
		rel := fullPath[relStart:]
		if strings.ContainsAny(rel, "/\\") {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		mu.Lock()
		entries = append(entries, fileEntry{
			Name:  d.Name(),
			Path:  fullPath,
			IsDir: d.IsDir(),
		})
		mu.Unlock()

		// Single level only
		if d.IsDir() {
			return fastwalk.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries, nil
}
