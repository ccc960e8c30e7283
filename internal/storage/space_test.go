package storage

import (
	"context"
	"math"
	"testing"
)

func TestFreeBytes(t *testing.T) {
	free, err := FreeBytes(t.TempDir())
	if err != nil {
		t.Fatalf("expected free space probe to succeed: %v", err)
	}
	if free == 0 {
		t.Fatal("expected non-zero free space on temp volume")
	}
}

func TestFreeBytesMissingPath(t *testing.T) {
	_, err := FreeBytes("/definitely/not/a/real/path")
	if err == nil {
		t.Fatal("expected error for missing path, got nil")
	}
}

func TestHasFreeSpace(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		dir     string
		minFree uint64
		expect  bool
	}{
		{
			name:    "zero threshold always passes",
			dir:     dir,
			minFree: 0,
			expect:  true,
		},
		{
			name:    "impossible threshold fails",
			dir:     dir,
			minFree: math.MaxUint64,
			expect:  false,
		},
		{
			name:    "probe failure counts as unavailable",
			dir:     "/definitely/not/a/real/path",
			minFree: 0,
			expect:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasFreeSpace(ctx, tt.dir, tt.minFree)
			if got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
