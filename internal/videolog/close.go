package videolog

import (
	"context"
	"time"

	"telemetrycap/internal/global"
	"telemetrycap/internal/logctx"
)

// Ends the capture session and logs a summary with the realized frame rate.
// The container is finalized on a background goroutine so the caller never
// waits on storage; the next frame starts a fresh session.
func (rec *Recorder) Close(ctx context.Context) {
	rec.initialized = false
	if rec.writer == nil {
		return
	}

	ctx = logctx.AppendCtxTag(ctx, global.NSVideo)

	elapsed := time.Since(rec.start)
	realized := realizedRate(rec.frames, elapsed)

	rec.abandon()

	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
		"Video capture %s ended frames: %d duration: %dms (%5.3f FPS)",
		rec.tag, rec.frames, elapsed.Milliseconds(), realized)
}

// Average write rate over the session. Sessions closed before any time has
// elapsed report zero rather than dividing by it.
func realizedRate(frames int64, elapsed time.Duration) (rate float64) {
	ms := elapsed.Milliseconds()
	if frames < 1 || ms <= 0 {
		return
	}

	rate = float64(frames-1) * 1000 / float64(ms)
	return
}
