package videolog

import (
	"image"
	"time"

	"telemetrycap/internal/global"
	"telemetrycap/pkg/avi"
)

// Single video frame handed through the capture pipeline
type Frame struct {
	// Seq is the producer's monotonic sequence number
	Seq uint64
	// Timestamp is when the frame was captured
	Timestamp time.Time
	// TraceID identifies the frame across pipeline steps, may be empty
	TraceID string
	// Image holds the raster data
	Image image.Image
}

// Frame-rate-throttled video capture writer with lazy first-frame
// initialization. Not safe for concurrent callers; one pipeline step owns it.
type Recorder struct {
	id        string
	tag       string // included in the file name, e.g. "raw", "processed"
	fps       float64
	directory string
	policy    global.RotationPolicy

	initialized bool
	writer      *avi.Writer
	start       time.Time
	frames      int64

	metrics MetricStorage
}
