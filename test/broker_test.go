package test

import (
	"net"
	"testing"

	"stompsession/frame"
	"stompsession/wire"
)

// fakeBroker is a minimal in-process STOMP broker: it completes the
// CONNECT/CONNECTED handshake on the one connection Serve accepts and then
// hands that connection to the test, which writes any MESSAGE or RECEIPT
// frames itself, so the client stack can be exercised end to end without a
// real broker process, the same role MockRegistry plays against etcd in
// mini-rpc's own bench suite.
type fakeBroker struct {
	ln net.Listener
}

func newFakeBroker(t *testing.T) *fakeBroker {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	return &fakeBroker{ln: ln}
}

func (b *fakeBroker) Addr() string { return b.ln.Addr().String() }

func (b *fakeBroker) Close() { b.ln.Close() }

// Serve accepts exactly one connection, performs the handshake, then hands
// the live connection to handle for the test to drive directly.
func (b *fakeBroker) Serve(t *testing.T, handle func(conn net.Conn, buf *wire.FrameBuffer)) {
	t.Helper()
	go func() {
		conn, err := b.ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := wire.NewFrameBuffer()
		scratch := make([]byte, 4096)
		for {
			tr, err := buf.ReadTransmission()
			if err != nil {
				return
			}
			if tr.Kind == wire.CompleteFrame {
				break
			}
			n, err := conn.Read(scratch)
			if n > 0 {
				buf.Append(scratch[:n])
			}
			if err != nil {
				return
			}
		}

		resp := frame.New(frame.CmdConnected)
		resp.Append(frame.HdrHeartBeat, "0,0")
		if err := wire.EncodeFrame(conn, resp); err != nil {
			return
		}

		handle(conn, buf)
	}()
}

// readFrame blocks until a full frame (skipping heartbeats) has been
// parsed out of buf, pulling more bytes off conn as needed.
func readFrame(conn net.Conn, buf *wire.FrameBuffer) (*frame.Frame, error) {
	scratch := make([]byte, 4096)
	for {
		tr, err := buf.ReadTransmission()
		if err != nil {
			return nil, err
		}
		if tr.Kind == wire.CompleteFrame {
			return tr.Frame, nil
		}
		n, err := conn.Read(scratch)
		if n > 0 {
			buf.Append(scratch[:n])
		}
		if err != nil {
			return nil, err
		}
	}
}
