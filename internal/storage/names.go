package storage

import (
	"time"

	"telemetrycap/internal/global"
)

// Builds a rotated or per-session file name like prefix[_tag]_YYYYMMDD_HHMMSS.ext
func TimestampedName(prefix string, tag string, extension string, when time.Time) (name string) {
	name = prefix
	if tag != "" {
		name += "_" + tag
	}
	name += "_" + when.Format(global.RotateStampLayout) + extension
	return
}
