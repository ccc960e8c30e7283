package metrics

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		metric Metric
		want   string
	}{
		{
			name: "counter with namespace",
			metric: Metric{
				Name:      "lines_recorded",
				Namespace: []string{"Capture", "Telemetry"},
				Value:     MetricValue{Raw: uint64(42), Unit: "count", Interval: time.Minute},
				Type:      Counter,
			},
			want: "Capture/Telemetry lines_recorded=42 count",
		},
		{
			name: "gauge float",
			metric: Metric{
				Name:      "realized_rate",
				Namespace: []string{"Capture", "Video"},
				Value:     MetricValue{Raw: 11.5, Unit: "fps"},
				Type:      Gauge,
			},
			want: "Capture/Video realized_rate=11.5 fps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.metric.Format()
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
