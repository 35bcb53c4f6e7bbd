package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// KVStore implements Store as JSON documents in a KV backend.
type KVStore struct {
	kv     KV
	prefix string
}

// KVStoreOption configures the KVStore.
type KVStoreOption func(*KVStore)

// WithPrefix namespaces every key, e.g. "amadolibros:".
func WithPrefix(p string) KVStoreOption {
	return func(s *KVStore) {
		s.prefix = p
	}
}

// NewKVStore creates a Store over kv.
func NewKVStore(kv KV, opts ...KVStoreOption) *KVStore {
	s := &KVStore{kv: kv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveCatalog writes the snapshot, the active-only home view and one
// detail entry per listing in a single batch.
func (s *KVStore) SaveCatalog(ctx context.Context, snap *domain.CatalogSnapshot) error {
	if snap == nil {
		return &Error{Op: "save catalog", Err: errors.New("nil snapshot")}
	}

	entries := make([]Entry, 0, len(snap.Items)+2)

	full, err := json.Marshal(snap)
	if err != nil {
		return &Error{Op: "encode", Key: KeyCatalog, Err: err}
	}
	entries = append(entries, Entry{Key: s.key(KeyCatalog), Value: full})

	home, err := json.Marshal(snap.ActiveItems())
	if err != nil {
		return &Error{Op: "encode", Key: KeyHomeCatalog, Err: err}
	}
	entries = append(entries, Entry{Key: s.key(KeyHomeCatalog), Value: home})

	for i := range snap.Items {
		b, err := json.Marshal(&snap.Items[i])
		if err != nil {
			return &Error{Op: "encode", Key: ItemKey(snap.Items[i].ID), Err: err}
		}
		entries = append(entries, Entry{Key: s.key(ItemKey(snap.Items[i].ID)), Value: b, TTL: ItemTTL})
	}

	if err := s.kv.SetMulti(ctx, entries); err != nil {
		return wrapErr("save catalog", KeyCatalog, err)
	}
	return nil
}

// GetCatalog returns the last persisted snapshot.
func (s *KVStore) GetCatalog(ctx context.Context) (*domain.CatalogSnapshot, error) {
	var snap domain.CatalogSnapshot
	if err := s.getJSON(ctx, KeyCatalog, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetHomeCatalog returns the active-only view.
func (s *KVStore) GetHomeCatalog(ctx context.Context) ([]domain.ListingDetail, error) {
	var items []domain.ListingDetail
	if err := s.getJSON(ctx, KeyHomeCatalog, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns the cached detail of one listing.
func (s *KVStore) GetItem(ctx context.Context, id string) (*domain.ListingDetail, error) {
	var item domain.ListingDetail
	if err := s.getJSON(ctx, ItemKey(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// PutItem caches the detail of one listing.
func (s *KVStore) PutItem(ctx context.Context, item *domain.ListingDetail) error {
	return s.putJSON(ctx, ItemKey(item.ID), item, ItemTTL)
}

// GetLastRun returns when the last sync attempt started.
func (s *KVStore) GetLastRun(ctx context.Context) (time.Time, error) {
	b, err := s.get(ctx, KeyLastRun)
	if err != nil {
		return time.Time{}, err
	}
	ms, err := strconv.ParseInt(string(bytes.TrimSpace(b)), 10, 64)
	if err != nil {
		return time.Time{}, &Error{Op: "decode", Key: KeyLastRun, Err: err}
	}
	return time.UnixMilli(ms).UTC(), nil
}

// SetLastRun records the start of a sync attempt as epoch milliseconds.
func (s *KVStore) SetLastRun(ctx context.Context, t time.Time) error {
	v := strconv.FormatInt(t.UnixMilli(), 10)
	return wrapErr("set", KeyLastRun, s.kv.Set(ctx, s.key(KeyLastRun), []byte(v), 0))
}

// GetLastReport returns the report of the most recent sync.
func (s *KVStore) GetLastReport(ctx context.Context) (*domain.SyncReport, error) {
	var r domain.SyncReport
	if err := s.getJSON(ctx, KeyLastReport, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// PutLastReport persists r without its item list.
func (s *KVStore) PutLastReport(ctx context.Context, r *domain.SyncReport) error {
	slim := *r
	slim.Items = nil
	return s.putJSON(ctx, KeyLastReport, &slim, 0)
}

// GetAccessCredential returns the persisted access token.
func (s *KVStore) GetAccessCredential(ctx context.Context) (*domain.AccessCredential, error) {
	var c domain.AccessCredential
	if err := s.getJSON(ctx, KeyAccessToken, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// PutAccessCredential persists the access token for ttl.
func (s *KVStore) PutAccessCredential(ctx context.Context, cred *domain.AccessCredential, ttl time.Duration) error {
	return s.putJSON(ctx, KeyAccessToken, cred, ttl)
}

// DeleteAccessCredential drops the persisted access token.
func (s *KVStore) DeleteAccessCredential(ctx context.Context) error {
	return wrapErr("delete", KeyAccessToken, s.kv.Delete(ctx, s.key(KeyAccessToken)))
}

// GetRefreshToken returns the last rotated refresh token.
func (s *KVStore) GetRefreshToken(ctx context.Context) (string, error) {
	b, err := s.get(ctx, KeyRefreshToken)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PutRefreshToken persists a rotated refresh token without expiry.
func (s *KVStore) PutRefreshToken(ctx context.Context, token string) error {
	return wrapErr("set", KeyRefreshToken, s.kv.Set(ctx, s.key(KeyRefreshToken), []byte(token), 0))
}

// PutWebhook stores a notification record.
func (s *KVStore) PutWebhook(ctx context.Context, rec *domain.WebhookRecord) error {
	return s.putJSON(ctx, WebhookKey(rec.Notification.Topic, rec.Notification.ID), rec, WebhookTTL)
}

// GetWebhook returns a stored notification record.
func (s *KVStore) GetWebhook(ctx context.Context, topic, id string) (*domain.WebhookRecord, error) {
	var rec domain.WebhookRecord
	if err := s.getJSON(ctx, WebhookKey(topic, id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// PutOrder caches an order summary.
func (s *KVStore) PutOrder(ctx context.Context, o *domain.OrderRecord) error {
	return s.putJSON(ctx, OrderKey(o.ID), o, OrderTTL)
}

// GetOrder returns a cached order summary.
func (s *KVStore) GetOrder(ctx context.Context, id string) (*domain.OrderRecord, error) {
	var o domain.OrderRecord
	if err := s.getJSON(ctx, OrderKey(id), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// PutStockChange records a stock notification.
func (s *KVStore) PutStockChange(ctx context.Context, c *domain.StockChange) error {
	return s.putJSON(ctx, StockKey(c.Resource), c, StockTTL)
}

// Purge removes expired entries on backends that need it.
func (s *KVStore) Purge(ctx context.Context) (int64, error) {
	p, ok := s.kv.(Purger)
	if !ok {
		return 0, nil
	}
	n, err := p.PurgeExpired(ctx)
	return n, wrapErr("purge", "", err)
}

// Migrate applies schema migrations on backends that have a schema.
func (s *KVStore) Migrate(ctx context.Context) error {
	m, ok := s.kv.(Migrator)
	if !ok {
		return nil
	}
	return wrapErr("migrate", "", m.Migrate(ctx))
}

// Ping checks the backend connection.
func (s *KVStore) Ping(ctx context.Context) error {
	return wrapErr("ping", "", s.kv.Ping(ctx))
}

// RoundTrip writes, reads back and deletes a probe key.
func (s *KVStore) RoundTrip(ctx context.Context) error {
	key := s.key(keyHealthProbe)
	want := strconv.FormatInt(time.Now().UnixNano(), 10)

	if err := s.kv.Set(ctx, key, []byte(want), probeTTL); err != nil {
		return wrapErr("set", keyHealthProbe, err)
	}
	got, err := s.kv.Get(ctx, key)
	if err != nil {
		return wrapErr("get", keyHealthProbe, err)
	}
	if string(got) != want {
		return &Error{Op: "round trip", Key: keyHealthProbe, Err: fmt.Errorf("read %q, wrote %q", got, want)}
	}
	return wrapErr("delete", keyHealthProbe, s.kv.Delete(ctx, key))
}

// Close releases the backend.
func (s *KVStore) Close() error {
	return s.kv.Close()
}

func (s *KVStore) key(k string) string {
	return s.prefix + k
}

func (s *KVStore) get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.kv.Get(ctx, s.key(key))
	if err != nil {
		return nil, wrapErr("get", key, err)
	}
	return b, nil
}

func (s *KVStore) getJSON(ctx context.Context, key string, dst any) error {
	b, err := s.get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return &Error{Op: "decode", Key: key, Err: err}
	}
	return nil
}

func (s *KVStore) putJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return &Error{Op: "encode", Key: key, Err: err}
	}
	return wrapErr("set", key, s.kv.Set(ctx, s.key(key), b, ttl))
}
