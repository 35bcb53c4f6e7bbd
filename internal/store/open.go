package store

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Open connects the named backend and wraps it in a KVStore. url is the
// redis URL or postgres DSN and is ignored for memory.
func Open(ctx context.Context, backend, url string, opts ...KVStoreOption) (*KVStore, error) {
	var (
		kv  KV
		err error
	)
	switch backend {
	case BackendMemory, "":
		kv = NewMemoryKV()
	case BackendRedis:
		kv, err = NewRedisKV(ctx, url)
	case BackendPostgres:
		kv, err = NewPostgresKV(ctx, url)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", backend, err)
	}
	return NewKVStore(kv, opts...), nil
}
