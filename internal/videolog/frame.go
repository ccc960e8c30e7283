package videolog

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pbnjay/memory"

	"telemetrycap/internal/global"
	"telemetrycap/internal/logctx"
	"telemetrycap/internal/storage"
	"telemetrycap/pkg/avi"
)

// Behind-schedule distance that raises the producer throttling event
const laggingFrameThreshold int64 = 2

// Handles one pipeline frame. The first frame after construction or a close
// opens the stream; later frames are written only when the admission throttle
// allows it. The frame is always returned unchanged so the recorder can sit
// inside a processing pipeline.
func (rec *Recorder) ProcessFrame(ctx context.Context, frame *Frame) (out *Frame) {
	out = frame
	if frame == nil || frame.Image == nil {
		return
	}

	ctx = logctx.AppendCtxTag(ctx, global.NSVideo)

	if !rec.initialized {
		rec.initialize(ctx, frame)
	}
	if rec.writer == nil {
		return
	}

	elapsed := time.Since(rec.start)
	logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
		"Video capture %s frames: %d duration: %dms", rec.tag, rec.frames, elapsed.Milliseconds())

	if admitFrame(rec.frames, elapsed, rec.fps) {
		err := rec.writer.WriteFrame(frame.Image)
		if err != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"Video write failed, capture disabled: %v", err)
			rec.metrics.WriteFailures.Add(1)
			rec.abandon()
			return
		}
		rec.frames++
		rec.metrics.FramesWritten.Add(1)
	} else {
		rec.metrics.FramesDropped.Add(1)
	}

	if rec.frames+laggingFrameThreshold < int64(elapsed.Seconds()*rec.fps) {
		logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
			"Frame rate higher than write speed")
	}

	return
}

// Admits the first frame unconditionally, then admits only while the writer
// is behind the schedule a constant-rate emitter would have reached. Frames
// are dropped, never queued or duplicated.
func admitFrame(written int64, elapsed time.Duration, fps float64) (admit bool) {
	if written == 0 {
		admit = true
		return
	}

	admit = float64(written) < elapsed.Seconds()*fps
	return
}

// Opens the video stream for this session: directory marker, free space
// gate, retention sweep, then a new timestamped file sized from the first
// frame. Failures leave the recorder initialized but without a writer, so
// capture silently stays off until the next close/restart.
func (rec *Recorder) initialize(ctx context.Context, frame *Frame) {
	rec.initialized = true
	rec.start = time.Now()
	rec.frames = 0

	// Keep media indexers away from the capture directory
	markerPath := filepath.Join(rec.directory, global.NoMediaFileName)
	_, err := os.Stat(markerPath)
	if err != nil {
		os.WriteFile(markerPath, nil, 0640)
	}

	if !storage.HasFreeSpace(ctx, rec.directory, rec.policy.MinimumFreeSpace) {
		return
	}

	// All video files share one retention pool regardless of tag
	deleted := storage.Sweep(rec.directory,
		rec.policy.FilePrefix, rec.policy.FileExtension, rec.policy.Retain)
	if deleted > 0 {
		logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
			"Retention sweep removed %d old video files", deleted)
	}

	bounds := frame.Image.Bounds()
	name := storage.TimestampedName(
		rec.policy.FilePrefix, rec.tag, rec.policy.FileExtension, time.Now())
	path := filepath.Join(rec.directory, name)

	writer, err := avi.NewWriter(path, bounds.Dx(), bounds.Dy(), rec.fps)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityData, global.WarnLog,
			"Failed to open video file '%s', capture disabled: %v", path, err)
		return
	}

	rec.writer = writer
	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
		"Video capture %s started '%s' %3.1f FPS, %d MiB memory free",
		rec.tag, path, rec.fps, memory.FreeMemory()/(1024*1024))
}

// Drops the writer reference and finalizes the container off the calling
// thread, so a slow storage medium cannot stall the pipeline.
func (rec *Recorder) abandon() {
	writer := rec.writer
	rec.writer = nil
	go writer.Close()
}
