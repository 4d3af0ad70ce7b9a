package session

import (
	"stompsession/frame"
	"stompsession/wire"
)

// send runs the outbound path described in spec §4.7: invoke the
// before-send hook (so callers can attach headers such as receipt:),
// serialise onto the socket, and translate any I/O error into the single
// opaque ErrConnectionLost result. It does not itself initiate reconnect;
// the next readable event (a Read returning 0 or an error) is what drives
// that, matching the spec's "transport death is detected by the read
// path" design.
func (s *Session) send(f *frame.Frame) error {
	s.hooks.beforeSend(f)

	cs := s.cs
	if cs == nil {
		return ErrConnectionLost
	}
	if err := wire.EncodeFrame(cs.conn, f); err != nil {
		return ErrConnectionLost
	}
	s.stats.framesSent++
	return nil
}

// writeHeartbeat writes a single heartbeat pulse to the given connState's
// socket. Unlike send, this bypasses the before-send hook — a heartbeat
// pulse is not a Frame and carries no headers for a hook to inspect.
func (s *Session) writeHeartbeat(cs *connState) error {
	if err := wire.EncodeHeartBeat(cs.conn); err != nil {
		return ErrConnectionLost
	}
	return nil
}
