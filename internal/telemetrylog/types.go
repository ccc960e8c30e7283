package telemetrylog

import (
	"os"
	"time"

	"telemetrycap/internal/global"
	"telemetrycap/internal/recent"
)

const (
	startingMarker   string = "Starting TelemetryLog"
	continuingMarker string = "Continuing TelemetryLog"
)

// Host telemetry display boundary. The capture engine only needs to forward
// captioned values and lines and trigger display refreshes.
type Display interface {
	AddData(caption string, value any)
	AddLine(text string)
	Update() bool
}

// Telemetry capture session owning the recent-entry buffer and the rotating
// log file handle. Not safe for concurrent callers; the expected caller is a
// single control loop.
type Session struct {
	id        string
	directory string
	policy    global.RotationPolicy
	toSystem  bool
	toFile    bool

	start  time.Time
	recent *recent.Buffer
	file   *os.File

	metrics MetricStorage
}
