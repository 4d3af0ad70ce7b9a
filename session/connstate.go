package session

import (
	"net"
	"time"

	"stompsession/wire"
)

// connState is the mutable half of the session's self-replacing-object
// redesign (spec §9): everything tied to one live transport. reconnect
// rebuilds this struct wholesale while Session's Config, registries, and
// hooks survive untouched.
type connState struct {
	generation uint64
	conn       net.Conn
	frameBuf   *wire.FrameBuffer

	txIntervalMs int // time between our outgoing heartbeat pulses
	rxTimeoutMs  int // time after which a silent peer trips the watchdog

	txTimer    *time.Timer
	rxWatchdog *time.Timer
}

func newConnState(generation uint64, conn net.Conn, negotiatedTxMs, negotiatedRxMs int) *connState {
	cs := &connState{
		generation: generation,
		conn:       conn,
		frameBuf:   wire.NewFrameBuffer(),
	}
	if negotiatedTxMs > 0 {
		cs.txIntervalMs = negotiatedTxMs / 2
	}
	if negotiatedRxMs > 0 {
		cs.rxTimeoutMs = int(float64(negotiatedRxMs) * graceFactor)
	}
	return cs
}

func (cs *connState) stopTimers() {
	if cs.txTimer != nil {
		cs.txTimer.Stop()
		cs.txTimer = nil
	}
	if cs.rxWatchdog != nil {
		cs.rxWatchdog.Stop()
		cs.rxWatchdog = nil
	}
}
