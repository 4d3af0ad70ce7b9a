// Package frame defines the STOMP 1.2 frame: a command, an ordered list of
// headers (duplicates allowed), and an opaque body.
//
// Frames are the unit the wire codec (package wire) produces and consumes,
// and the unit the session dispatcher routes by command. Frame construction
// goes through the factory functions in factory.go rather than struct
// literals, mirroring the fixed set of STOMP client commands.
package frame

// Header is a single STOMP header line. STOMP allows repeated header keys
// (the first occurrence wins per the spec, but all are preserved here so a
// caller can inspect the full list if it needs to).
type Header struct {
	Key   string
	Value string
}

// Frame is one STOMP protocol unit: COMMAND, headers, body, trailing NUL.
type Frame struct {
	Command string
	Headers []Header
	Body    []byte
}

// Well-known STOMP commands used by this client.
const (
	CmdConnect     = "CONNECT"
	CmdStomp       = "STOMP"
	CmdConnected   = "CONNECTED"
	CmdSend        = "SEND"
	CmdSubscribe   = "SUBSCRIBE"
	CmdUnsubscribe = "UNSUBSCRIBE"
	CmdAck         = "ACK"
	CmdNack        = "NACK"
	CmdBegin       = "BEGIN"
	CmdCommit      = "COMMIT"
	CmdAbort       = "ABORT"
	CmdDisconnect  = "DISCONNECT"
	CmdMessage     = "MESSAGE"
	CmdReceipt     = "RECEIPT"
	CmdError       = "ERROR"
)

// Well-known header keys.
const (
	HdrDestination   = "destination"
	HdrContentLength = "content-length"
	HdrSubscription  = "subscription"
	HdrAck           = "ack"
	HdrId            = "id"
	HdrReceipt       = "receipt"
	HdrReceiptId     = "receipt-id"
	HdrTransaction   = "transaction"
	HdrMessageId     = "message-id"
	HdrHeartBeat     = "heart-beat"
	HdrHost          = "host"
	HdrLogin         = "login"
	HdrPasscode      = "passcode"
	HdrAcceptVersion = "accept-version"
)

// New creates an empty frame for the given command. Use Append to add
// headers in order.
func New(command string) *Frame {
	return &Frame{Command: command}
}

// Append adds a header, preserving any existing header of the same key.
func (f *Frame) Append(key, value string) *Frame {
	f.Headers = append(f.Headers, Header{Key: key, Value: value})
	return f
}

// Get returns the value of the first header matching key.
func (f *Frame) Get(key string) (string, bool) {
	for _, h := range f.Headers {
		if h.Key == key {
			return h.Value, true
		}
	}
	return "", false
}

// InsertAfter inserts a header immediately following the first header
// matching afterKey, preserving wire order (e.g. splicing a receipt:
// header between destination and content-length on an already-built SEND
// frame). If afterKey is absent, the header is appended at the tail.
func (f *Frame) InsertAfter(afterKey, key, value string) *Frame {
	for i, h := range f.Headers {
		if h.Key == afterKey {
			f.Headers = append(f.Headers, Header{})
			copy(f.Headers[i+2:], f.Headers[i+1:])
			f.Headers[i+1] = Header{Key: key, Value: value}
			return f
		}
	}
	return f.Append(key, value)
}

// Remove deletes all headers matching key.
func (f *Frame) Remove(key string) {
	out := f.Headers[:0]
	for _, h := range f.Headers {
		if h.Key != key {
			out = append(out, h)
		}
	}
	f.Headers = out
}

// Subscription returns the "subscription" header, required on inbound
// MESSAGE frames.
func (f *Frame) Subscription() (string, bool) { return f.Get(HdrSubscription) }

// Ack returns the "ack" header, required on inbound MESSAGE frames whose
// subscription uses client or client-individual ack mode.
func (f *Frame) Ack() (string, bool) { return f.Get(HdrAck) }

// ReceiptId returns the "receipt-id" header, required on inbound RECEIPT
// frames.
func (f *Frame) ReceiptId() (string, bool) { return f.Get(HdrReceiptId) }

// Receipt returns the "receipt" header, present on any outbound frame for
// which the caller requested a receipt.
func (f *Frame) Receipt() (string, bool) { return f.Get(HdrReceipt) }

// Reset clears a frame for reuse by FrameBuffer.Recycle, keeping the
// underlying header and body slice capacity.
func (f *Frame) Reset() {
	f.Command = ""
	f.Headers = f.Headers[:0]
	f.Body = f.Body[:0]
}
