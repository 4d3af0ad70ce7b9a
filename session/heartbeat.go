package session

import "time"

// armTxTimer (re-)schedules the next send-heartbeat pulse. Called once at
// connection setup and again after every fire, exactly like the original's
// one-shot mio timeout that re-registers itself. A zero interval disables
// the send side entirely.
func (s *Session) armTxTimer(cs *connState) {
	if cs.txIntervalMs <= 0 {
		return
	}
	generation := cs.generation
	cs.txTimer = time.AfterFunc(time.Duration(cs.txIntervalMs)*time.Millisecond, func() {
		s.events <- sessionEvent{generation: generation, kind: evSendHeartbeat}
	})
}

// armWatchdog (re-)schedules the receive-watchdog. A zero interval disables
// the receive side. Exactly one pending watchdog timer exists at a time:
// it is called directly only for a fresh connState, which has no watchdog
// yet, and every later re-arm goes through resetWatchdog, which clears any
// existing timer first.
func (s *Session) armWatchdog(cs *connState) {
	if cs.rxTimeoutMs <= 0 {
		return
	}
	generation := cs.generation
	cs.rxWatchdog = time.AfterFunc(time.Duration(cs.rxTimeoutMs)*time.Millisecond, func() {
		s.events <- sessionEvent{generation: generation, kind: evWatchdogFired}
	})
}

// resetWatchdog clears any existing receive-watchdog timer and arms a
// fresh one. Called after every inbound heartbeat or frame.
func (s *Session) resetWatchdog(cs *connState) {
	if cs.rxWatchdog != nil {
		cs.rxWatchdog.Stop()
		cs.rxWatchdog = nil
	}
	s.armWatchdog(cs)
}

// sendHeartbeatPulse writes a single heartbeat byte and re-arms the send
// timer. A write failure initiates reconnect directly, unlike send, which
// only reports ErrConnectionLost and leaves reconnect to the read path.
func (s *Session) sendHeartbeatPulse(cs *connState) {
	if err := s.writeHeartbeat(cs); err != nil {
		s.reconnect(cs)
		return
	}
	s.armTxTimer(cs)
}
