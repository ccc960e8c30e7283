package telemetrylog

import (
	"context"
	"fmt"
	"time"

	"telemetrycap/internal/global"
	"telemetrycap/internal/logctx"
)

// Records one telemetry line. Exact repeats of a buffered line are moved to
// the most recent spot and not re-emitted. The close control line shuts the
// active file instead of being logged.
func (session *Session) Record(ctx context.Context, text string) {
	if text == global.CloseControlLine {
		session.closeFile()
		return
	}

	fresh := session.recent.Record(text)
	if !fresh {
		session.metrics.LinesDeduped.Add(1)
		return
	}
	session.metrics.LinesRecorded.Add(1)

	if session.toSystem {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, text)
	}

	session.appendLine(ctx, text)
}

// Appends one elapsed-stamped line to the log file and flushes it. A write
// failure closes the file; later appends become no-ops until the session is
// restarted.
func (session *Session) appendLine(ctx context.Context, text string) {
	if session.file == nil {
		return
	}

	elapsed := time.Since(session.start).Seconds()
	_, err := fmt.Fprintf(session.file, "%5.3fs %s\n", elapsed, text)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
			"Log write failed, capture to storage disabled: %v", err)
		session.metrics.WriteFailures.Add(1)
		session.closeFile()
		return
	}

	err = session.file.Sync()
	if err != nil {
		session.metrics.WriteFailures.Add(1)
		session.closeFile()
		return
	}

	session.metrics.LinesWritten.Add(1)
}

// Whether the session currently holds an open log file
func (session *Session) FileOpen() (open bool) {
	open = session.file != nil
	return
}

// Closes the session and its file handle. Idempotent.
func (session *Session) Close() {
	session.closeFile()
}

// Close the file writer. This should be called on errors or when done.
func (session *Session) closeFile() {
	if session.file != nil {
		session.file.Close()
		session.file = nil
	}
}
