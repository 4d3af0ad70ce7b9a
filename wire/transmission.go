package wire

import "stompsession/frame"

// Kind tags the variant carried by a Transmission.
type Kind int

const (
	// None means no complete transmission is available yet; the caller
	// must wait for more bytes before calling ReadTransmission again.
	None Kind = iota
	HeartBeat
	CompleteFrame
	ConnectionClosed
)

// Transmission is the tagged value produced by FrameBuffer.ReadTransmission:
// a heartbeat pulse, a complete frame, an end-of-stream signal, or nothing
// yet.
type Transmission struct {
	Kind  Kind
	Frame *frame.Frame // only set when Kind == CompleteFrame
}
