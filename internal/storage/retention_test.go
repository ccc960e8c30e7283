package storage

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

// Creates files with ascending modification times, oldest first
func makeAgedFiles(t *testing.T, dir string, names []string) {
	t.Helper()

	base := time.Now().Add(-time.Duration(len(names)) * time.Hour)
	for i, name := range names {
		path := filepath.Join(dir, name)
		err := os.WriteFile(path, []byte("x"), 0640)
		if err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		stamp := base.Add(time.Duration(i) * time.Hour)
		err = os.Chtimes(path, stamp, stamp)
		if err != nil {
			t.Fatalf("failed to age test file: %v", err)
		}
	}
}

func listNames(t *testing.T, dir string) (names []string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return
}

func TestSweep(t *testing.T) {
	tests := []struct {
		name          string
		files         []string
		prefix        string
		suffix        string
		retain        int
		expectDeleted int
		expectRemain  []string
	}{
		{
			name: "six matching files retain four",
			files: []string{
				"telemetry_log_20240101_000000.txt",
				"telemetry_log_20240102_000000.txt",
				"telemetry_log_20240103_000000.txt",
				"telemetry_log_20240104_000000.txt",
				"telemetry_log_20240105_000000.txt",
				"telemetry_log_20240106_000000.txt",
			},
			prefix:        "telemetry_log",
			suffix:        ".txt",
			retain:        4,
			expectDeleted: 3,
			expectRemain: []string{
				"telemetry_log_20240104_000000.txt",
				"telemetry_log_20240105_000000.txt",
				"telemetry_log_20240106_000000.txt",
			},
		},
		{
			name: "below retain count deletes nothing",
			files: []string{
				"video_20240101_000000.avi",
				"video_20240102_000000.avi",
			},
			prefix:        "video",
			suffix:        ".avi",
			retain:        12,
			expectDeleted: 0,
			expectRemain: []string{
				"video_20240101_000000.avi",
				"video_20240102_000000.avi",
			},
		},
		{
			name: "non matching files untouched",
			files: []string{
				"telemetry_log_20240101_000000.txt",
				"telemetry_log_20240102_000000.txt",
				"unrelated.txt",
				"telemetry_log_20240103_000000.avi",
			},
			prefix:        "telemetry_log",
			suffix:        ".txt",
			retain:        2,
			expectDeleted: 1,
			expectRemain: []string{
				"telemetry_log_20240102_000000.txt",
				"telemetry_log_20240103_000000.avi",
				"unrelated.txt",
			},
		},
		{
			name:          "missing directory is a no-op",
			files:         nil,
			prefix:        "telemetry_log",
			suffix:        ".txt",
			retain:        4,
			expectDeleted: 0,
			expectRemain:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.files == nil {
				dir = filepath.Join(dir, "does-not-exist")
			} else {
				makeAgedFiles(t, dir, tt.files)
			}

			deleted := Sweep(dir, tt.prefix, tt.suffix, tt.retain)

			if deleted != tt.expectDeleted {
				t.Fatalf("expected %d deleted, got %d", tt.expectDeleted, deleted)
			}

			if tt.files == nil {
				return
			}

			remain := listNames(t, dir)
			expect := append([]string(nil), tt.expectRemain...)
			sort.Strings(expect)

			if len(remain) != len(expect) {
				t.Fatalf("expected %v remaining, got %v", expect, remain)
			}
			for i := range expect {
				if remain[i] != expect[i] {
					t.Fatalf("expected %v remaining, got %v", expect, remain)
				}
			}
		})
	}
}

func TestSweepDeletesOldestFirst(t *testing.T) {
	dir := t.TempDir()
	makeAgedFiles(t, dir, []string{
		"video_20240101_000000.avi", // oldest
		"video_20240102_000000.avi",
		"video_20240103_000000.avi", // newest
	})

	deleted := Sweep(dir, "video", ".avi", 3)
	if deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", deleted)
	}

	remain := listNames(t, dir)
	for _, name := range remain {
		if name == "video_20240101_000000.avi" {
			t.Fatalf("expected oldest file to be removed, still present: %v", remain)
		}
	}
}
