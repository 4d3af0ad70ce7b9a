package session

import (
	"context"
	"net"
	"time"
)

// ConnectionFactory opens a new transport for the session: DNS resolution,
// TCP connect, and the STOMP CONNECT/CONNECTED handshake. It returns the
// heartbeat intervals already negotiated against the server's CONNECTED
// response (minimum of our request and the server's promise on each side —
// see the connector package). The session applies the tx/2 and rx*GRACE_FACTOR
// adjustments itself.
//
// Called once at construction (New) and again on every reconnect attempt.
type ConnectionFactory func(ctx context.Context) (conn net.Conn, txHeartbeatMs, rxHeartbeatMs int, err error)

const (
	// readBufferSize is the scratch buffer size for each socket Read.
	readBufferSize = 64 * 1024

	// graceFactor multiplies the negotiated receive heartbeat interval to
	// get the receive-watchdog timeout.
	graceFactor = 2.0

	// defaultReconnectBackoff is the fixed delay between failed reconnect
	// attempts.
	defaultReconnectBackoff = 3000 * time.Millisecond
)

// Config is the immutable configuration captured at construction and
// reused on every reconnect attempt.
type Config struct {
	// Dial opens (or re-opens) the transport. Required.
	Dial ConnectionFactory

	// ReconnectBackoff is the fixed delay between failed reconnect
	// attempts. Defaults to 3s when zero.
	ReconnectBackoff time.Duration
}

func (c Config) backoff() time.Duration {
	if c.ReconnectBackoff <= 0 {
		return defaultReconnectBackoff
	}
	return c.ReconnectBackoff
}
