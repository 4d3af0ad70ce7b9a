// Package loadbalance picks one broker instance out of several returned by
// a discovery.Locator. It is the same concern mini-rpc solves for RPC
// server instances, retargeted at broker addresses: a session reconnecting
// through an EtcdLocator may see more than one live instance and needs a
// deterministic way to choose.
package loadbalance

import "stompsession/discovery"

// Balancer selects one instance from the available list.
type Balancer interface {
	// Pick selects one instance from the available list. Called on every
	// (re)connect attempt.
	Pick(instances []discovery.BrokerInstance) (*discovery.BrokerInstance, error)

	// Name returns the strategy name (for logging).
	Name() string
}
