package loadbalance

import (
	"fmt"
	"hash/crc32"
	"sort"

	"stompsession/discovery"
)

// ConsistentHashBalancer maps a key (e.g. a session identity or a
// destination name) to a broker instance using a hash ring, so the same
// key keeps reconnecting to the same broker as long as the ring doesn't
// change. Useful when brokers partition destinations and a client wants to
// stick to the partition it was already talking to.
//
// Note this does not implement the Balancer interface (Pick here takes a
// string key, not the instance list) — callers that want ring affinity use
// Add/Pick directly instead of going through Balancer.
type ConsistentHashBalancer struct {
	replicas int
	ring     []uint32
	nodes    map[uint32]*discovery.BrokerInstance
}

// NewConsistentHashBalancer creates a hash ring with 100 virtual nodes per
// instance.
func NewConsistentHashBalancer() *ConsistentHashBalancer {
	return &ConsistentHashBalancer{
		replicas: 100,
		ring:     []uint32{},
		nodes:    make(map[uint32]*discovery.BrokerInstance),
	}
}

// Add places an instance onto the hash ring with its virtual nodes.
func (b *ConsistentHashBalancer) Add(instance *discovery.BrokerInstance) {
	for i := 0; i < b.replicas; i++ {
		key := fmt.Sprintf("%s#%d", instance.Addr, i)
		hash := crc32.ChecksumIEEE([]byte(key))
		b.ring = append(b.ring, hash)
		b.nodes[hash] = instance
	}
	sort.Slice(b.ring, func(i, j int) bool {
		return b.ring[i] < b.ring[j]
	})
}

// Pick finds the instance responsible for the given key.
func (b *ConsistentHashBalancer) Pick(key string) (*discovery.BrokerInstance, error) {
	if len(b.ring) == 0 {
		return nil, fmt.Errorf("loadbalance: hash ring is empty")
	}

	hash := crc32.ChecksumIEEE([]byte(key))
	idx := sort.Search(len(b.ring), func(i int) bool {
		return b.ring[i] >= hash
	})
	if idx == len(b.ring) {
		idx = 0
	}

	return b.nodes[b.ring[idx]], nil
}

func (b *ConsistentHashBalancer) Name() string {
	return "ConsistentHash"
}
