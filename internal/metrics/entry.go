// Lightweight metric containers collected from capture modules
package metrics

import (
	"fmt"
	"strings"
)

// Single line human readable rendering for log output
func (metric Metric) Format() (text string) {
	text = fmt.Sprintf("%s %s=%v %s",
		strings.Join(metric.Namespace, "/"),
		metric.Name,
		metric.Value.Raw,
		metric.Value.Unit)
	return
}
