package probe

import "time"

// Result is the outcome of a single availability probe. Every failure mode
// (bad status, timeout, DNS error, refused connection) is folded into
// Available=false with a human-readable Detail, so one dead stream can never
// abort a run.
type Result struct {
	URL        string
	Available  bool
	StatusCode int           // HTTP status when a response was obtained; 0 otherwise.
	Detail     string        // Status code or error description for the report.
	Latency    time.Duration // Time until classification.
}
