package telemetrylog

import (
	"sync/atomic"
	"time"

	"telemetrycap/internal/global"
	"telemetrycap/internal/metrics"
)

type MetricStorage struct {
	LinesRecorded atomic.Uint64 // fresh lines accepted into the buffer
	LinesDeduped  atomic.Uint64 // exact repeats suppressed
	LinesWritten  atomic.Uint64 // lines flushed to the log file
	WriteFailures atomic.Uint64 // appends that failed and closed the file
	Rotations     atomic.Uint64 // active file renames
}

func (session *Session) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	recorded := session.metrics.LinesRecorded.Swap(0)
	deduped := session.metrics.LinesDeduped.Swap(0)
	written := session.metrics.LinesWritten.Swap(0)
	failures := session.metrics.WriteFailures.Swap(0)
	rotations := session.metrics.Rotations.Swap(0)

	// Record read time
	recordTime := time.Now()
	namespace := []string{global.NSCapture, global.NSTelemetry}

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
		counter("lines_recorded", "Fresh telemetry lines recorded in the interval", recorded),
		counter("lines_deduped", "Repeated telemetry lines suppressed in the interval", deduped),
		counter("lines_written", "Telemetry lines written to the log file in the interval", written),
		counter("write_failures", "Log file write failures in the interval", failures),
		counter("rotations", "Log file rotations in the interval", rotations),
	}
	return
}
