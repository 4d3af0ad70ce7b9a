package loadbalance

import (
	"fmt"
	"sync/atomic"

	"stompsession/discovery"
)

// RoundRobinBalancer distributes (re)connect attempts evenly across all
// known broker instances in order. Uses an atomic counter for lock-free,
// goroutine-safe operation.
type RoundRobinBalancer struct {
	counter int64
}

func (b *RoundRobinBalancer) Pick(instances []discovery.BrokerInstance) (*discovery.BrokerInstance, error) {
	if len(instances) == 0 {
		return nil, fmt.Errorf("loadbalance: no broker instances available")
	}
	index := (atomic.AddInt64(&b.counter, 1) - 1) % int64(len(instances))
	return &instances[index], nil
}

func (b *RoundRobinBalancer) Name() string {
	return "RoundRobin"
}
