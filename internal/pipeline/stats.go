package pipeline

// RunStats tracks aggregate counters across a checking run.
type RunStats struct {
	Total       int // Entries found in the playlist.
	Tested      int // Entries actually probed (MaxStreams may cap this).
	Available   int
	Unavailable int
}

// AvailabilityRate returns the percentage of tested streams that were
// available. A run with zero tested streams reports 0 rather than dividing
// by zero.
func (s *RunStats) AvailabilityRate() float64 {
	if s.Tested == 0 {
		return 0
	}
	return 100 * float64(s.Available) / float64(s.Tested)
}
