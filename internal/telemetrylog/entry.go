// Captures telemetry lines to the process log and a rotating file
package telemetrylog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pbnjay/memory"

	"telemetrycap/internal/global"
	"telemetrycap/internal/logctx"
	"telemetrycap/internal/recent"
)

// Session constructor. Nothing is opened until Start.
func NewSession(conf global.CaptureConfig) (session *Session) {
	conf.ApplyDefaults()

	session = &Session{
		id:        uuid.NewString(),
		directory: conf.Directory,
		policy:    conf.Log,
		toSystem:  conf.ToSystemLog,
		toFile:    conf.ToFile,
		recent:    recent.NewBuffer(conf.MaxRecent),
	}
	return
}

// Starts or resumes the capture session around a host display. The recent
// buffer is reset, the elapsed-time clock restarts and the log file handle is
// reopened after a rotation check. Passing back a display wrapped by this
// session resumes it and writes a Continuing marker instead of Starting.
func (session *Session) Start(ctx context.Context, disp Display) (wrapped Display) {
	ctx = logctx.AppendCtxTag(ctx, global.NSTelemetry)

	session.start = time.Now()
	session.closeFile()
	session.recent.Reset()

	if session.toFile {
		session.openFile(ctx)
	}

	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
		"Capture session %s: %d MiB memory free", session.id, memory.FreeMemory()/(1024*1024))

	logged, resuming := disp.(*loggedDisplay)
	if resuming && logged.session == session {
		if session.toSystem {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, continuingMarker)
		}
		session.appendLine(ctx, continuingMarker)

		logged.ctx = ctx
		wrapped = logged
		return
	}

	if session.toSystem {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, startingMarker)
	}
	if session.file != nil {
		stamp := time.Now().UTC().Format(global.StartStampLayout)
		_, err := fmt.Fprintf(session.file, "%s %s\n", stamp, startingMarker)
		if err != nil {
			session.closeFile()
		}
	}

	wrapped = &loggedDisplay{ctx: ctx, session: session, inner: disp}
	return
}

// ID of this capture session
func (session *Session) ID() (id string) {
	id = session.id
	return
}
