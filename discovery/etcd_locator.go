package discovery

import (
	"context"
	"encoding/json"

	clientv3 "go.etcd.io/etcd/client/v3"
)

// EtcdLocator resolves broker addresses from etcd instead of a static
// config value, so a session can keep reconnecting correctly even if the
// broker it was originally pointed at has since migrated.
//
// Key layout mirrors mini-rpc's service registry:
//
//	Key:   /stompsession/brokers/{name}/{addr}
//	Value: JSON-encoded BrokerInstance
//
// A broker operator (or a sidecar) is expected to Register/Deregister
// entries the same way an RPC server registers itself with etcd; this
// client only reads.
type EtcdLocator struct {
	client *clientv3.Client
}

// NewEtcdLocator connects to the given etcd endpoints.
func NewEtcdLocator(endpoints []string) (*EtcdLocator, error) {
	c, err := clientv3.New(clientv3.Config{Endpoints: endpoints})
	if err != nil {
		return nil, err
	}
	return &EtcdLocator{client: c}, nil
}

// Register advertises a broker instance under the given name with a TTL
// lease, the same lease-renewal pattern mini-rpc's EtcdRegistry uses for
// RPC service instances.
func (l *EtcdLocator) Register(ctx context.Context, name string, instance BrokerInstance, ttlSeconds int64) error {
	lease, err := l.client.Grant(ctx, ttlSeconds)
	if err != nil {
		return err
	}

	val, err := json.Marshal(instance)
	if err != nil {
		return err
	}

	key := "/stompsession/brokers/" + name + "/" + instance.Addr
	if _, err := l.client.Put(ctx, key, string(val), clientv3.WithLease(lease.ID)); err != nil {
		return err
	}

	ch, err := l.client.KeepAlive(ctx, lease.ID)
	if err != nil {
		return err
	}
	go func() {
		for range ch {
		}
	}()
	return nil
}

// Deregister removes a previously registered broker instance.
func (l *EtcdLocator) Deregister(ctx context.Context, name, addr string) error {
	_, err := l.client.Delete(ctx, "/stompsession/brokers/"+name+"/"+addr)
	return err
}

// Locate returns all broker instances currently registered under name.
func (l *EtcdLocator) Locate(ctx context.Context, name string) ([]BrokerInstance, error) {
	prefix := "/stompsession/brokers/" + name + "/"
	resp, err := l.client.Get(ctx, prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, err
	}

	instances := make([]BrokerInstance, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		var instance BrokerInstance
		if err := json.Unmarshal(kv.Value, &instance); err != nil {
			continue
		}
		instances = append(instances, instance)
	}
	return instances, nil
}
