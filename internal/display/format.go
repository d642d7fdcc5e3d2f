// Package display provides the startup banner and human-readable formatting
// helpers shared by the pipeline and the report writer.
package display

import (
	"fmt"
	"time"
)

// FormatLatency returns a short human label for a probe duration
// (e.g. "340 ms", "1.2 s").
func FormatLatency(d time.Duration) string {
	if d < time.Millisecond {
		return "<1 ms"
	}
	if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1f s", d.Seconds())
}

// FormatPercent renders a ratio of part to total as a percentage with two
// decimal places. A zero total reports 0.00% rather than dividing by zero.
func FormatPercent(part, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", 100*float64(part)/float64(total))
}
