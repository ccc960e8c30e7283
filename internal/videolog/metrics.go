package videolog

import (
	"sync/atomic"
	"time"

	"telemetrycap/internal/global"
	"telemetrycap/internal/metrics"
)

type MetricStorage struct {
	FramesWritten atomic.Uint64 // frames admitted and written to the container
	FramesDropped atomic.Uint64 // frames rejected by the admission throttle
	WriteFailures atomic.Uint64 // writes that failed and closed the stream
}

func (rec *Recorder) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	written := rec.metrics.FramesWritten.Swap(0)
	dropped := rec.metrics.FramesDropped.Swap(0)
	failures := rec.metrics.WriteFailures.Swap(0)

	// Record read time
	recordTime := time.Now()
	namespace := []string{global.NSCapture, global.NSVideo}
	if rec.tag != "" {
		namespace = append(namespace, rec.tag)
	}

	counter := func(name string, description string, raw uint64) (metric metrics.Metric) {
		metric = metrics.Metric{
			Name:        name,
			Description: description,
			Namespace:   namespace,
			Value: metrics.MetricValue{
				Raw:      raw,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		}
		return
	}

	collection = []metrics.Metric{
		counter("frames_written", "Frames written to the video file in the interval", written),
		counter("frames_dropped", "Frames dropped by the admission throttle in the interval", dropped),
		counter("write_failures", "Video write failures in the interval", failures),
	}
	return
}
