package session

import (
	"log"

	"stompsession/wire"
)

// readLoop runs in its own goroutine per connState generation. It only
// performs the blocking socket Read; FrameBuffer mutation and dispatch stay
// on the dispatcher goroutine, so this is the only place the connection's
// read path ever touches the network.
func readLoop(cs *connState, events chan<- sessionEvent) {
	buf := make([]byte, readBufferSize)
	for {
		n, err := cs.conn.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			events <- sessionEvent{generation: cs.generation, kind: evData, data: chunk}
		}
		if err != nil {
			events <- sessionEvent{generation: cs.generation, kind: evReadErr, err: err}
			return
		}
	}
}

// drainFrameBuffer repeatedly pulls transmissions out of the connState's
// FrameBuffer until it needs more bytes. A non-nil return is fatal: a
// protocol violation, a frame-buffer malformation, or a failed ACK/NACK
// write, per spec §4.5/§4.6.
func (s *Session) drainFrameBuffer(cs *connState) error {
	for {
		t, err := cs.frameBuf.ReadTransmission()
		if err != nil {
			return err
		}
		switch t.Kind {
		case wire.None:
			return nil
		case wire.HeartBeat:
			s.resetWatchdog(cs)
		case wire.CompleteFrame:
			s.resetWatchdog(cs)
			s.hooks.beforeReceive(t.Frame)
			s.stats.framesReceived++
			if err := s.dispatch(t.Frame); err != nil {
				return err
			}
			cs.frameBuf.Recycle(t.Frame)
		case wire.ConnectionClosed:
			s.reconnect(cs)
			return nil
		}
	}
}

// run is the dispatcher goroutine: the single thread that drives the frame
// buffer, dispatch, heartbeats and reconnect. readLoop and the heartbeat
// timers only ever send events here. The registries are also used from
// caller goroutines under their own mutex, and send writes frames to the
// socket from whichever goroutine calls it.
func (s *Session) run() error {
	for {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		case ev := <-s.events:
			if ev.generation != s.cs.generation {
				continue // stale event from a connection already replaced
			}
			switch ev.kind {
			case evData:
				s.cs.frameBuf.Append(ev.data)
				if err := s.drainFrameBuffer(s.cs); err != nil {
					return err
				}
			case evReadErr:
				s.reconnect(s.cs)
			case evSendHeartbeat:
				s.sendHeartbeatPulse(s.cs)
			case evWatchdogFired:
				log.Printf("session: did not receive a heartbeat within the expected window")
			}
		}
	}
}
