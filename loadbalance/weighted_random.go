package loadbalance

import (
	"fmt"
	"math/rand"

	"stompsession/discovery"
)

// WeightedRandomBalancer selects instances probabilistically based on
// their Weight. An instance with weight 10 gets roughly 2x the connection
// attempts of one with weight 5.
type WeightedRandomBalancer struct{}

func (b *WeightedRandomBalancer) Pick(instances []discovery.BrokerInstance) (*discovery.BrokerInstance, error) {
	if len(instances) == 0 {
		return nil, fmt.Errorf("loadbalance: no broker instances available")
	}

	totalWeight := 0
	for _, v := range instances {
		totalWeight += v.Weight
	}
	if totalWeight <= 0 {
		return &instances[0], nil
	}

	r := rand.Intn(totalWeight)
	for i := range instances {
		r -= instances[i].Weight
		if r < 0 {
			return &instances[i], nil
		}
	}

	return nil, fmt.Errorf("loadbalance: unexpected error in weighted random selection")
}

func (b *WeightedRandomBalancer) Name() string {
	return "WeightedRandom"
}
