package telemetrylog

import (
	"context"
	"fmt"

	"telemetrycap/internal/global"
)

// Forwarding wrapper around a host display. Every datum and line passes
// through the capture session before reaching the wrapped display.
type loggedDisplay struct {
	ctx     context.Context
	session *Session
	inner   Display
}

func (disp *loggedDisplay) AddData(caption string, value any) {
	disp.session.Record(disp.ctx, fmt.Sprintf("%s: %v", caption, value))
	if disp.inner != nil {
		disp.inner.AddData(caption, value)
	}
}

func (disp *loggedDisplay) AddLine(text string) {
	disp.session.Record(disp.ctx, text)

	// Control lines are commands, not content
	if text == global.CloseControlLine {
		return
	}
	if disp.inner != nil {
		disp.inner.AddLine(text)
	}
}

func (disp *loggedDisplay) Update() (refreshed bool) {
	if disp.inner != nil {
		refreshed = disp.inner.Update()
	}
	return
}
