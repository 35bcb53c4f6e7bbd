package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trexxeseba/amadolibros-web/internal/store"
)

func TestMemoryKV(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := store.NewMemoryKV()

	_, err := kv.Get(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	value := []byte("hello")
	require.NoError(t, kv.Set(ctx, "k", value, 0))
	value[0] = 'j'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got), "stored value is copied")

	require.NoError(t, kv.SetMulti(ctx, []store.Entry{
		{Key: "a", Value: []byte("1")},
		{Key: "b", Value: []byte("2"), TTL: 10 * time.Millisecond},
	}))
	got, err = kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))

	time.Sleep(30 * time.Millisecond)
	_, err = kv.Get(ctx, "b")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, kv.Delete(ctx, "a"))
	require.NoError(t, kv.Delete(ctx, "a"))
	_, err = kv.Get(ctx, "a")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryKV_PurgeExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := store.NewMemoryKV()

	require.NoError(t, kv.Set(ctx, "keep", []byte("x"), 0))
	require.NoError(t, kv.Set(ctx, "drop", []byte("y"), time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	n, err := kv.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	s, err := store.Open(context.Background(), store.BackendMemory, "")
	require.NoError(t, err)
	require.NoError(t, s.Ping(context.Background()))

	_, err = store.Open(context.Background(), "etcd", "")
	require.Error(t, err)
}
