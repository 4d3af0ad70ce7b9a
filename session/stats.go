package session

// Stats is a point-in-time snapshot of session activity. It is a
// supplemented feature (§SUPPLEMENTED FEATURES): not a metrics/exporter
// stack, just a plain struct in the spirit of the original's
// outstanding_receipts() and the teacher's wg-tracked shutdown
// diagnostics.
type Stats struct {
	FramesSent        uint64
	FramesReceived    uint64
	Reconnects        uint64
	OutstandingRecpts int
}

type statCounters struct {
	framesSent     uint64
	framesReceived uint64
	reconnects     uint64
}

// Stats returns a snapshot of the session's counters. Safe to call from
// any goroutine that also calls into Session's public API concurrently
// with re-entrant use from within a handler; like the rest of the public
// surface it is intended to be driven from the dispatcher's own call
// stack or from re-entrant handler code, not from unrelated goroutines.
func (s *Session) Stats() Stats {
	return Stats{
		FramesSent:        s.stats.framesSent,
		FramesReceived:    s.stats.framesReceived,
		Reconnects:        s.stats.reconnects,
		OutstandingRecpts: len(s.receipts.outstanding()),
	}
}
