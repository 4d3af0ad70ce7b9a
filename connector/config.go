// Package connector implements the connection factory spec.md treats as an
// external collaborator: DNS/address resolution, TCP connect, and the
// STOMP CONNECT/CONNECTED handshake, returning heartbeat intervals already
// negotiated against the server's response.
package connector

import (
	"stompsession/discovery"
	"stompsession/loadbalance"
)

// ClientConfig describes how to reach and authenticate against a broker.
type ClientConfig struct {
	// Host is the STOMP virtual host sent in the CONNECT frame's host
	// header. If empty, "/" is used.
	Host string

	Login    string
	Passcode string

	// RequestedTxMs is the interval, in milliseconds, at which this
	// client guarantees it can send something (a frame or a heartbeat
	// pulse). 0 means it makes no such guarantee.
	RequestedTxMs int

	// RequestedRxMs is the interval, in milliseconds, at which this
	// client wants to receive something from the server. 0 means it
	// does not require heartbeats from the server.
	RequestedRxMs int

	// Locator resolves the broker's address. If nil, Addr is used
	// directly via a discovery.StaticLocator.
	Locator discovery.Locator

	// Addr is the static broker address, used when Locator is nil.
	Addr string

	// ServiceName is the name passed to Locator.Locate — the logical
	// broker name, not an address. Ignored when Locator is nil.
	ServiceName string

	// Balancer picks one instance out of those Locator returns.
	// Defaults to loadbalance.RoundRobinBalancer when nil.
	Balancer loadbalance.Balancer
}

func (c ClientConfig) locator() discovery.Locator {
	if c.Locator != nil {
		return c.Locator
	}
	return discovery.StaticLocator{Addr: c.Addr}
}

func (c ClientConfig) balancer() loadbalance.Balancer {
	if c.Balancer != nil {
		return c.Balancer
	}
	return &loadbalance.RoundRobinBalancer{}
}
