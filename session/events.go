package session

// eventKind tags what woke the dispatcher goroutine. This is Go's
// rendition of the reactor's three event classes (readable, timer-fired,
// plus the implicit reconnect sleep) — see spec §9's reactor-abstraction
// note: independent goroutines (reader, send-heartbeat timer,
// receive-watchdog timer) funnel into this single channel, and only the
// dispatcher goroutine ever touches FrameBuffer or reads the socket. The
// registries are shared with caller goroutines behind a mutex, and
// outbound frames are written by whichever goroutine calls send.
type eventKind int

const (
	evData eventKind = iota
	evReadErr
	evSendHeartbeat
	evWatchdogFired
)

// sessionEvent carries a generation number matching the connState it was
// produced for. Events from a connState that has since been replaced by
// reconnect are silently discarded by the dispatcher — this is how a
// goroutine left over from a dead connection (a blocked Read about to
// return an error, a timer about to fire) is prevented from corrupting the
// new connection's state.
type sessionEvent struct {
	generation uint64
	kind       eventKind
	data       []byte
	err        error
}
