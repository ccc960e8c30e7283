// Shared storage plumbing for the rotating capture writers
package storage

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	"telemetrycap/internal/global"
	"telemetrycap/internal/logctx"
)

// Reports bytes available to unprivileged writers on the volume holding path
func FreeBytes(path string) (free uint64, err error) {
	var stat unix.Statfs_t
	err = unix.Statfs(path, &stat)
	if err != nil {
		err = fmt.Errorf("failed to stat filesystem for '%s': %v", path, err)
		return
	}

	free = stat.Bavail * uint64(stat.Bsize)
	return
}

// Checks whether the volume holding dir has more than minFree bytes available.
// Probe failures count as insufficient space.
func HasFreeSpace(ctx context.Context, dir string, minFree uint64) (enough bool) {
	free, err := FreeBytes(dir)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityData, global.WarnLog,
			"Free space probe failed, treating storage as unavailable: %v", err)
		return
	}

	if free <= minFree {
		logctx.LogEvent(ctx, global.VerbosityProgress, global.WarnLog,
			"Insufficient free space (%d bytes free, %d required), capture to storage disabled", free, minFree)
		return
	}

	enough = true
	return
}
