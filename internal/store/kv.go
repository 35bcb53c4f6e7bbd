package store

import (
	"context"
	"time"
)

// Entry is one key written by KV.SetMulti. A zero TTL never expires.
type Entry struct {
	Key   string
	Value []byte
	TTL   time.Duration
}

// KV is the byte-level backend behind the catalog store. Get returns
// ErrNotFound for missing or expired keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	SetMulti(ctx context.Context, entries []Entry) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Purger is implemented by backends that need expired keys removed
// explicitly.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Migrator is implemented by backends with a schema.
type Migrator interface {
	Migrate(ctx context.Context) error
}
