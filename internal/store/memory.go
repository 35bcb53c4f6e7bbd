package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 10 * time.Minute

// MemoryKV is an in-process KV backed by go-cache. Data does not survive
// a restart; it is meant for development and tests.
type MemoryKV struct {
	c *cache.Cache
}

// NewMemoryKV creates an empty in-memory backend.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{c: cache.New(cache.NoExpiration, memoryCleanupInterval)}
}

// Get returns a copy of the stored value.
func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	b, _ := v.([]byte)
	return append([]byte(nil), b...), nil
}

// Set stores a copy of value.
func (m *MemoryKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, append([]byte(nil), value...), expiration(ttl))
	return nil
}

// SetMulti stores every entry.
func (m *MemoryKV) SetMulti(ctx context.Context, entries []Entry) error {
	for _, e := range entries {
		if err := m.Set(ctx, e.Key, e.Value, e.TTL); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes key. Missing keys are not an error.
func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

// Ping always succeeds.
func (m *MemoryKV) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *MemoryKV) Close() error { return nil }

// PurgeExpired drops expired entries ahead of the janitor.
func (m *MemoryKV) PurgeExpired(context.Context) (int64, error) {
	before := m.c.ItemCount()
	m.c.DeleteExpired()
	return int64(before - m.c.ItemCount()), nil
}

func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return cache.NoExpiration
	}
	return ttl
}
