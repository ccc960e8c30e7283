package metrics

import (
	"time"
)

type MetricType string

const (
	Counter MetricType = "counter" // always increasing
	Gauge   MetricType = "gauge"   // can go up/down
)

// Container for a metric and associated data
type Metric struct {
	Name        string // e.g. lines_recorded, frames_dropped
	Description string
	Namespace   []string // e.g. "Capture/Telemetry"
	Value       MetricValue
	Type        MetricType
	Timestamp   time.Time // time when the metric was recorded
}

// Specific value of a metric
type MetricValue struct {
	Raw      interface{}   // uint64, float64
	Unit     string        // e.g. "count", "bytes", "fps"
	Interval time.Duration // measurement window
}
