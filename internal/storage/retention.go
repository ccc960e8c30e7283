package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Deletes the oldest files in dir matching prefix and suffix so that retain-1
// remain before the next file is created. Best effort, failures are swallowed.
func Sweep(dir string, prefix string, suffix string, retain int) (deleted int) {
	if retain < 1 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	type aged struct {
		name    string
		modTime time.Time
	}

	var matches []aged
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		matches = append(matches, aged{name: name, modTime: info.ModTime()})
	}

	if len(matches) < retain {
		return
	}

	// Oldest first. Identical modification times keep listing order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].modTime.Before(matches[j].modTime)
	})

	removeCount := len(matches) - retain + 1
	for _, victim := range matches[:removeCount] {
		err = os.Remove(filepath.Join(dir, victim.name))
		if err != nil {
			continue
		}
		deleted++
	}

	return
}
