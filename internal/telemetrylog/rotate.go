package telemetrylog

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"telemetrycap/internal/global"
	"telemetrycap/internal/logctx"
	"telemetrycap/internal/storage"
)

// Path of the active log file
func (session *Session) canonicalPath() (path string) {
	path = filepath.Join(session.directory, session.policy.FilePrefix+session.policy.FileExtension)
	return
}

// Opens the canonical log file, rotating it first when it grew past the size
// threshold. Any failure leaves the session without a file and capture to
// storage silently disabled.
func (session *Session) openFile(ctx context.Context) {
	if !storage.HasFreeSpace(ctx, session.directory, session.policy.MinimumFreeSpace) {
		return
	}

	session.rotateIfNeeded(ctx)

	path := session.canonicalPath()
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityData, global.WarnLog,
			"Failed to open log file '%s', capture to storage disabled: %v", path, err)
		return
	}

	session.file = file
}

// Renames an oversized active file to a timestamped name and sweeps old
// rotated files. Best effort, rename failures leave the active file in place.
func (session *Session) rotateIfNeeded(ctx context.Context) {
	path := session.canonicalPath()

	info, err := os.Stat(path)
	if err != nil || info.Size() < session.policy.RotateSize {
		return
	}

	rotatedName := storage.TimestampedName(
		session.policy.FilePrefix, "", session.policy.FileExtension, time.Now())
	rotatedPath := filepath.Join(session.directory, rotatedName)

	err = os.Rename(path, rotatedPath)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityData, global.WarnLog,
			"Failed to rotate log file: %v", err)
		return
	}

	session.metrics.Rotations.Add(1)
	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
		"Rotated log file to '%s'", rotatedName)

	deleted := storage.Sweep(session.directory,
		session.policy.FilePrefix, session.policy.FileExtension, session.policy.Retain)
	if deleted > 0 {
		logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
			"Retention sweep removed %d old log files", deleted)
	}
}
