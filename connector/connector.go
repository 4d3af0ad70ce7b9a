package connector

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"stompsession/frame"
	"stompsession/wire"
)

// Dial resolves a broker address via cfg's Locator/Balancer, opens a TCP
// connection, and performs the STOMP CONNECT/CONNECTED handshake. It
// returns the heartbeat intervals already negotiated against the server's
// response — the minimum of our request and the server's promise on each
// side, per spec §6 — ready for session.Config.Dial to hand straight to
// the session's heartbeat scheduler.
func Dial(ctx context.Context, cfg ClientConfig) (net.Conn, int, int, error) {
	instances, err := cfg.locator().Locate(ctx, cfg.ServiceName)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("connector: locate broker: %w", err)
	}
	if len(instances) == 0 {
		return nil, 0, 0, fmt.Errorf("connector: no broker instances available")
	}

	instance, err := cfg.balancer().Pick(instances)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("connector: pick broker instance: %w", err)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", instance.Addr)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("connector: dial %s: %w", instance.Addr, err)
	}

	txMs, rxMs, err := handshake(conn, cfg)
	if err != nil {
		conn.Close()
		return nil, 0, 0, err
	}

	return conn, txMs, rxMs, nil
}

// handshake writes CONNECT and blocks for CONNECTED, returning the
// negotiated heartbeat intervals.
func handshake(conn net.Conn, cfg ClientConfig) (txMs, rxMs int, err error) {
	host := cfg.Host
	if host == "" {
		host = "/"
	}

	req := frame.Connect(host, cfg.Login, cfg.Passcode, cfg.RequestedTxMs, cfg.RequestedRxMs)
	if err := wire.EncodeFrame(conn, req); err != nil {
		return 0, 0, fmt.Errorf("connector: write CONNECT: %w", err)
	}

	resp, err := readOneFrame(conn)
	if err != nil {
		return 0, 0, fmt.Errorf("connector: read CONNECTED: %w", err)
	}

	if resp.Command == frame.CmdError {
		return 0, 0, fmt.Errorf("connector: broker rejected CONNECT: %s", string(resp.Body))
	}
	if resp.Command != frame.CmdConnected {
		return 0, 0, fmt.Errorf("connector: expected CONNECTED, got %s", resp.Command)
	}

	serverTxMs, serverRxMs := 0, 0
	if hb, ok := resp.Get(frame.HdrHeartBeat); ok {
		serverTxMs, serverRxMs = parseHeartBeat(hb)
	}

	txMs = negotiate(cfg.RequestedTxMs, serverRxMs)
	rxMs = negotiate(cfg.RequestedRxMs, serverTxMs)
	return txMs, rxMs, nil
}

// readOneFrame blocks on conn until a single complete frame (or heartbeat,
// skipped) has been read. Used only during the handshake, before the
// session's own reader goroutine and FrameBuffer take over.
func readOneFrame(conn net.Conn) (*frame.Frame, error) {
	buf := wire.NewFrameBuffer()
	scratch := make([]byte, 4096)
	for {
		t, err := buf.ReadTransmission()
		if err != nil {
			return nil, err
		}
		switch t.Kind {
		case wire.CompleteFrame:
			return t.Frame, nil
		case wire.ConnectionClosed:
			return nil, fmt.Errorf("connection closed during handshake")
		case wire.HeartBeat:
			continue
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

// parseHeartBeat parses a "cx,cy" heart-beat header value.
func parseHeartBeat(value string) (cx, cy int) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	cx, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	cy, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	return cx, cy
}

// NewConnectionFactory adapts Dial into the closure shape
// session.Config.Dial expects, so callers can write
// session.Config{Dial: connector.NewConnectionFactory(cfg)} the same way
// mini-rpc's NewClient takes a registry and balancer up front rather than
// per-call.
func NewConnectionFactory(cfg ClientConfig) func(ctx context.Context) (net.Conn, int, int, error) {
	return func(ctx context.Context) (net.Conn, int, int, error) {
		return Dial(ctx, cfg)
	}
}

// negotiate implements spec §6's literal wording: "the minimum of its
// request and the server's promise". Either side being 0 disables that
// direction entirely, rather than being treated as an unbounded minimum.
func negotiate(requested, promised int) int {
	if requested <= 0 || promised <= 0 {
		return 0
	}
	if requested < promised {
		return requested
	}
	return promised
}
