// Captures pipeline video frames to rotating MJPEG files
package videolog

import (
	"github.com/google/uuid"

	"telemetrycap/internal/global"
)

// Recorder constructor. Nothing is opened until the first frame arrives.
func NewRecorder(conf global.CaptureConfig, tag string) (rec *Recorder) {
	conf.ApplyDefaults()

	rec = &Recorder{
		id:        uuid.NewString(),
		tag:       tag,
		fps:       conf.FrameRate,
		directory: conf.Directory,
		policy:    conf.Video,
	}
	return
}

// ID of this capture session
func (rec *Recorder) ID() (id string) {
	id = rec.id
	return
}

// Whether the recorder currently holds an open video stream
func (rec *Recorder) Recording() (active bool) {
	active = rec.writer != nil
	return
}
