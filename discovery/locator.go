// Package discovery resolves the network address of a broker the session
// should (re)connect to. It plays the same role in this client that
// service discovery plays in an RPC client: the session's connection
// factory asks a Locator for candidate addresses instead of being handed a
// single hardcoded one.
//
// This is a supplemented feature (see SPEC_FULL.md) — the session core
// never talks to a Locator directly; the connection factory built in
// package connector does, exactly the way mini-rpc's Client used its
// Registry before a Balancer pick, never the RPC codec or transport layer.
package discovery

import "context"

// BrokerInstance is one address a broker can currently be reached at.
type BrokerInstance struct {
	Addr   string
	Weight int
}

// Locator discovers the currently live broker instances for a name. A
// static single-address deployment still implements this interface (via
// StaticLocator) so the connection factory has one code path regardless of
// how the address is resolved.
type Locator interface {
	Locate(ctx context.Context, name string) ([]BrokerInstance, error)
}

// StaticLocator always returns the one address it was constructed with.
// This is what most deployments use; EtcdLocator is the opt-in alternative
// for environments where the broker's address can change underneath a
// long-lived client.
type StaticLocator struct {
	Addr string
}

func (s StaticLocator) Locate(ctx context.Context, name string) ([]BrokerInstance, error) {
	return []BrokerInstance{{Addr: s.Addr, Weight: 1}}, nil
}
