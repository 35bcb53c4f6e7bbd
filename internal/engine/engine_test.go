package engine

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/trexxeseba/amadolibros-web/internal/meli"
	meliMocks "github.com/trexxeseba/amadolibros-web/internal/meli/mocks"
	notifyMocks "github.com/trexxeseba/amadolibros-web/internal/notify/mocks"
	"github.com/trexxeseba/amadolibros-web/internal/store"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// fakeTokens is a TokenSource that counts invalidations.
type fakeTokens struct {
	err         error
	invalidated atomic.Int32
}

func (f *fakeTokens) Token(context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "APP_USR-test", nil
}

func (f *fakeTokens) Invalidate(context.Context) {
	f.invalidated.Add(1)
}

// failingKV fails every multi-key write.
type failingKV struct {
	*store.MemoryKV
}

var errBackendDown = errors.New("backend down")

func (failingKV) SetMulti(context.Context, []store.Entry) error { return errBackendDown }

// testClock is a settable clock.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func statusIs(status string) any {
	return mock.MatchedBy(func(r meli.SearchRequest) bool {
		return r.Status == status && r.SellerID == "123"
	})
}

// expectSearch makes the active pass return ids and the paused pass nothing.
func expectSearch(c *meliMocks.MockListingClient, ids ...string) {
	c.EXPECT().SearchItemIDs(mock.Anything, statusIs("")).
		Return(&meli.SearchResponse{IDs: ids, Total: len(ids)}, nil).Once()
	c.EXPECT().SearchItemIDs(mock.Anything, statusIs(meli.StatusFilterPaused)).
		Return(&meli.SearchResponse{IDs: []string{}}, nil).Once()
}

func itemEntry(id, status string) meli.MultiGetResult {
	body, _ := json.Marshal(map[string]any{
		"id":                 id,
		"title":              "Libro " + id,
		"price":              650,
		"currency_id":        "UYU",
		"status":             status,
		"available_quantity": 1,
	})
	return meli.MultiGetResult{Code: 200, Body: body}
}

// expectItems answers multi-gets from entries; unknown ids come back as 404.
func expectItems(c *meliMocks.MockListingClient, entries map[string]meli.MultiGetResult) {
	c.EXPECT().GetItems(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ids []string) ([]meli.MultiGetResult, error) {
			out := make([]meli.MultiGetResult, 0, len(ids))
			for _, id := range ids {
				if e, ok := entries[id]; ok {
					out = append(out, e)
					continue
				}
				out = append(out, meli.MultiGetResult{Code: 404, Body: []byte(`{}`)})
			}
			return out, nil
		})
}

func newTestEngine(
	t *testing.T,
	s store.Store,
	c meli.ListingClient,
	tokens TokenSource,
	opts ...EngineOption,
) *Engine {
	t.Helper()
	opts = append([]EngineOption{WithSellerID("123"), WithCooldown(0)}, opts...)
	return NewEngine(s, c, tokens, nil, opts...)
}

func countLines(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestEngine_RunSync_ThreeActive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewKVStore(store.NewMemoryKV())
	c := meliMocks.NewMockListingClient(t)

	expectSearch(c, "MLU1", "MLU2", "MLU3")
	expectItems(c, map[string]meli.MultiGetResult{
		"MLU1": itemEntry("MLU1", "active"),
		"MLU2": itemEntry("MLU2", "active"),
		"MLU3": itemEntry("MLU3", "active"),
	})

	eng := newTestEngine(t, s, c, &fakeTokens{}, WithSampleSize(2))
	report, err := eng.RunSync(ctx, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.SyncSuccess, report.Status)
	assert.Equal(t, 3, report.Stats.Total)
	assert.Equal(t, 3, report.Stats.Active)
	assert.Equal(t, 3, report.Stats.TotalReported)
	assert.Len(t, report.Sample, 2)
	assert.Nil(t, report.Items)
	assert.Empty(t, report.Error)
	assert.Zero(t, countLines(report.Logs, "[error]"))
	assert.False(t, eng.Running())

	snap, err := s.GetCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Total)
	require.Len(t, snap.Items, 3)
	assert.Equal(t, "MLU1", snap.Items[0].ID)

	home, err := s.GetHomeCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, home, 3)

	item, err := s.GetItem(ctx, "MLU2")
	require.NoError(t, err)
	assert.Equal(t, "Libro MLU2", item.Title)

	last, err := s.GetLastReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncSuccess, last.Status)
	assert.Equal(t, report.Logs, last.Logs)
}

func TestEngine_RunSync_IncludeItems(t *testing.T) {
	t.Parallel()

	s := store.NewKVStore(store.NewMemoryKV())
	c := meliMocks.NewMockListingClient(t)

	expectSearch(c, "MLU1", "MLU2")
	expectItems(c, map[string]meli.MultiGetResult{
		"MLU1": itemEntry("MLU1", "active"),
		"MLU2": itemEntry("MLU2", "paused"),
	})

	eng := newTestEngine(t, s, c, &fakeTokens{})
	report, err := eng.RunSync(context.Background(), RunOptions{IncludeItems: true})
	require.NoError(t, err)

	assert.Equal(t, domain.SyncSuccess, report.Status)
	assert.Len(t, report.Items, 2)
	assert.Equal(t, 1, report.Stats.Active)
	assert.Equal(t, 1, report.Stats.Paused)

	home, err := s.GetHomeCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, home, 1)
	assert.Equal(t, "MLU1", home[0].ID)
}

func TestEngine_RunSync_Warnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMocks func(*meliMocks.MockListingClient)
		wantLog    string
	}{
		{
			name: "no listings found",
			setupMocks: func(c *meliMocks.MockListingClient) {
				expectSearch(c)
			},
			wantLog: "no listings found",
		},
		{
			name: "ids found but none could be fetched",
			setupMocks: func(c *meliMocks.MockListingClient) {
				expectSearch(c, "MLU9")
				expectItems(c, nil)
			},
			wantLog: "no listing could be fetched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			s := store.NewKVStore(store.NewMemoryKV())
			previous := &domain.CatalogSnapshot{
				Items: []domain.ListingDetail{{ID: "OLD1", Status: domain.StatusActive}},
				Total: 1,
			}
			require.NoError(t, s.SaveCatalog(ctx, previous))

			c := meliMocks.NewMockListingClient(t)
			tt.setupMocks(c)

			eng := newTestEngine(t, s, c, &fakeTokens{})
			report, err := eng.RunSync(ctx, RunOptions{})
			require.NoError(t, err)

			assert.Equal(t, domain.SyncWarning, report.Status)
			assert.Equal(t, 0, report.Stats.Total)
			assert.Contains(t, strings.Join(report.Logs, "\n"), tt.wantLog)

			snap, err := s.GetCatalog(ctx)
			require.NoError(t, err)
			require.Len(t, snap.Items, 1)
			assert.Equal(t, "OLD1", snap.Items[0].ID)
		})
	}
}

func TestEngine_RunSync_PartialBatchFailure(t *testing.T) {
	t.Parallel()

	s := store.NewKVStore(store.NewMemoryKV())
	c := meliMocks.NewMockListingClient(t)

	expectSearch(c, "A", "B", "C", "D")
	c.EXPECT().GetItems(mock.Anything, []string{"A", "B"}).
		Return(nil, &meli.TransientError{StatusCode: 500, Body: "internal"}).Once()
	c.EXPECT().GetItems(mock.Anything, []string{"C", "D"}).
		Return([]meli.MultiGetResult{itemEntry("C", "active"), itemEntry("D", "active")}, nil).Once()

	eng := newTestEngine(t, s, c, &fakeTokens{},
		WithEnricher(meli.NewEnricher(c, meli.WithBatchSize(2))),
	)
	report, err := eng.RunSync(context.Background(), RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.SyncSuccess, report.Status)
	assert.Equal(t, 2, report.Stats.Total)
	assert.Equal(t, 1, report.Stats.FailedBatches)
	assert.LessOrEqual(t, report.Stats.Total, 4)
	assert.Equal(t, 1, countLines(report.Logs, "[error]"))
}

func TestEngine_RunSync_DeadlineSavesPartialSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewKVStore(store.NewMemoryKV())
	c := meliMocks.NewMockListingClient(t)

	expectSearch(c, "A", "B", "C", "D", "E", "F")
	c.EXPECT().GetItems(mock.Anything, []string{"A", "B"}).
		Return([]meli.MultiGetResult{itemEntry("A", "active"), itemEntry("B", "active")}, nil).Once()
	c.EXPECT().GetItems(mock.Anything, []string{"C", "D"}).
		Return([]meli.MultiGetResult{itemEntry("C", "active"), itemEntry("D", "paused")}, nil).Once()
	// The last batch outlives the run deadline.
	c.EXPECT().GetItems(mock.Anything, []string{"E", "F"}).
		RunAndReturn(func(ctx context.Context, _ []string) ([]meli.MultiGetResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	eng := newTestEngine(t, s, c, &fakeTokens{},
		WithEnricher(meli.NewEnricher(c, meli.WithBatchSize(2))),
		WithMaxDuration(50*time.Millisecond),
	)
	report, err := eng.RunSync(ctx, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.SyncWarning, report.Status)
	assert.True(t, report.Stats.Partial)
	assert.Empty(t, report.Error)
	assert.Equal(t, 4, report.Stats.Total)
	assert.Equal(t, 3, report.Stats.Active)
	assert.Zero(t, report.Stats.FailedBatches)
	assert.Zero(t, countLines(report.Logs, "[error]"))
	assert.Contains(t, strings.Join(report.Logs, "\n"), "deadline")

	snap, err := s.GetCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Items, 4)
	assert.Equal(t, "D", snap.Items[3].ID)

	last, err := s.GetLastReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncWarning, last.Status)
}

func TestEngine_RunSync_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		tokenErr        error
		setupMocks      func(*meliMocks.MockListingClient)
		kv              store.KV
		wantMissing     []string
		wantInvalidated int32
		wantErr         string
	}{
		{
			name:        "missing credentials",
			tokenErr:    &meli.ConfigError{Missing: []string{meli.EnvAppID, meli.EnvRefreshToken}},
			setupMocks:  func(*meliMocks.MockListingClient) {},
			wantMissing: []string{meli.EnvAppID, meli.EnvRefreshToken},
			wantErr:     meli.EnvAppID,
		},
		{
			name: "authentication rejected during enumeration",
			setupMocks: func(c *meliMocks.MockListingClient) {
				c.EXPECT().SearchItemIDs(mock.Anything, statusIs("")).
					Return(nil, &meli.AuthError{StatusCode: 401, Description: "invalid access token"}).Once()
			},
			wantInvalidated: 1,
			wantErr:         "invalid access token",
		},
		{
			name: "authentication rejected during enrichment",
			setupMocks: func(c *meliMocks.MockListingClient) {
				expectSearch(c, "A")
				c.EXPECT().GetItems(mock.Anything, mock.Anything).
					Return(nil, &meli.AuthError{StatusCode: 403}).Once()
			},
			wantInvalidated: 1,
			wantErr:         "enriching listings",
		},
		{
			name: "store write failure",
			setupMocks: func(c *meliMocks.MockListingClient) {
				expectSearch(c, "A")
				expectItems(c, map[string]meli.MultiGetResult{"A": itemEntry("A", "active")})
			},
			kv:      failingKV{store.NewMemoryKV()},
			wantErr: "saving catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kv := tt.kv
			if kv == nil {
				kv = store.NewMemoryKV()
			}
			s := store.NewKVStore(kv)

			c := meliMocks.NewMockListingClient(t)
			tt.setupMocks(c)
			tokens := &fakeTokens{err: tt.tokenErr}

			eng := newTestEngine(t, s, c, tokens)
			report, err := eng.RunSync(context.Background(), RunOptions{})
			require.NoError(t, err)

			assert.Equal(t, domain.SyncError, report.Status)
			assert.Contains(t, report.Error, tt.wantErr)
			assert.Equal(t, tt.wantMissing, report.Missing)
			assert.Equal(t, tt.wantInvalidated, tokens.invalidated.Load())
			assert.Positive(t, countLines(report.Logs, "[error]"))

			_, err = s.GetCatalog(context.Background())
			assert.True(t, store.IsNotFound(err))
		})
	}
}

func TestEngine_RunSync_ResolvesSeller(t *testing.T) {
	t.Parallel()

	c := meliMocks.NewMockListingClient(t)
	c.EXPECT().GetMe(mock.Anything).Return(&meli.User{ID: 123, Nickname: "AMADOLIBROS"}, nil).Once()
	expectSearch(c)

	eng := NewEngine(store.NewKVStore(store.NewMemoryKV()), c, &fakeTokens{}, nil, WithCooldown(0))
	report, err := eng.RunSync(context.Background(), RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.SyncWarning, report.Status)
	assert.Contains(t, strings.Join(report.Logs, "\n"), "seller resolved from token owner: 123")

	// The resolved seller is remembered; GetMe is expected only once.
	id, err := eng.SellerID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123", id)
}

func TestEngine_SellerID(t *testing.T) {
	t.Parallel()

	t.Run("configured seller skips lookup", func(t *testing.T) {
		t.Parallel()

		c := meliMocks.NewMockListingClient(t)
		eng := NewEngine(store.NewKVStore(store.NewMemoryKV()), c, &fakeTokens{}, nil, WithSellerID("777"))
		id, err := eng.SellerID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "777", id)
	})

	t.Run("lookup failure is not remembered", func(t *testing.T) {
		t.Parallel()

		c := meliMocks.NewMockListingClient(t)
		c.EXPECT().GetMe(mock.Anything).Return(nil, &meli.TransientError{StatusCode: 503}).Once()
		c.EXPECT().GetMe(mock.Anything).Return(&meli.User{ID: 42}, nil).Once()
		eng := NewEngine(store.NewKVStore(store.NewMemoryKV()), c, &fakeTokens{}, nil)

		_, err := eng.SellerID(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolving seller id")

		id, err := eng.SellerID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "42", id)
	})
}

func TestEngine_RunSync_Cooldown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	c := meliMocks.NewMockListingClient(t)
	c.EXPECT().SearchItemIDs(mock.Anything, mock.Anything).
		Return(&meli.SearchResponse{IDs: []string{}}, nil)

	eng := newTestEngine(t, store.NewKVStore(store.NewMemoryKV()), c, &fakeTokens{},
		WithCooldown(time.Hour),
		WithNowFunc(clock.Now),
	)

	_, err := eng.RunSync(ctx, RunOptions{})
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)
	_, err = eng.RunSync(ctx, RunOptions{})
	var ce *CooldownError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 50*time.Minute, ce.RetryAfter)
	assert.Contains(t, ce.Error(), "50m0s")

	report, err := eng.RunSync(ctx, RunOptions{Force: true})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncWarning, report.Status)

	// The forced run restarted the window.
	clock.Advance(59 * time.Minute)
	_, err = eng.RunSync(ctx, RunOptions{})
	require.ErrorAs(t, err, &ce)

	clock.Advance(2 * time.Minute)
	_, err = eng.RunSync(ctx, RunOptions{})
	require.NoError(t, err)
}

func TestEngine_RunSync_InProgress(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	c := meliMocks.NewMockListingClient(t)
	c.EXPECT().SearchItemIDs(mock.Anything, statusIs("")).
		RunAndReturn(func(context.Context, meli.SearchRequest) (*meli.SearchResponse, error) {
			<-release
			return &meli.SearchResponse{}, nil
		}).Once()
	c.EXPECT().SearchItemIDs(mock.Anything, statusIs(meli.StatusFilterPaused)).
		Return(&meli.SearchResponse{}, nil).Once()

	eng := newTestEngine(t, store.NewKVStore(store.NewMemoryKV()), c, &fakeTokens{})

	done := make(chan *domain.SyncReport, 1)
	go func() {
		r, err := eng.RunSync(context.Background(), RunOptions{})
		assert.NoError(t, err)
		done <- r
	}()

	require.Eventually(t, eng.Running, time.Second, time.Millisecond)

	_, err := eng.RunSync(context.Background(), RunOptions{Force: true})
	require.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	report := <-done
	assert.Equal(t, domain.SyncWarning, report.Status)
	assert.False(t, eng.Running())
}

func TestEngine_RunSync_Notifies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMocks func(*meliMocks.MockListingClient, *notifyMocks.MockNotifier)
		wantStatus domain.SyncStatus
	}{
		{
			name: "warning is notified",
			setupMocks: func(c *meliMocks.MockListingClient, n *notifyMocks.MockNotifier) {
				expectSearch(c)
				n.EXPECT().SendSyncReport(mock.Anything, mock.MatchedBy(func(r *domain.SyncReport) bool {
					return r.Status == domain.SyncWarning && len(r.Logs) > 0
				})).Return(nil).Once()
			},
			wantStatus: domain.SyncWarning,
		},
		{
			name: "notifier failure does not change the status",
			setupMocks: func(c *meliMocks.MockListingClient, n *notifyMocks.MockNotifier) {
				c.EXPECT().SearchItemIDs(mock.Anything, mock.Anything).
					Return(nil, &meli.AuthError{StatusCode: 401}).Once()
				n.EXPECT().SendSyncReport(mock.Anything, mock.Anything).
					Return(errors.New("discord down")).Once()
			},
			wantStatus: domain.SyncError,
		},
		{
			name: "success is not notified",
			setupMocks: func(c *meliMocks.MockListingClient, _ *notifyMocks.MockNotifier) {
				expectSearch(c, "A")
				expectItems(c, map[string]meli.MultiGetResult{"A": itemEntry("A", "active")})
			},
			wantStatus: domain.SyncSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := meliMocks.NewMockListingClient(t)
			n := notifyMocks.NewMockNotifier(t)
			tt.setupMocks(c, n)

			eng := NewEngine(store.NewKVStore(store.NewMemoryKV()), c, &fakeTokens{}, n,
				WithSellerID("123"),
				WithCooldown(0),
			)
			report, err := eng.RunSync(context.Background(), RunOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, report.Status)
		})
	}
}

func TestEngine_RunSync_Traced(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	c := meliMocks.NewMockListingClient(t)
	expectSearch(c, "MLU1")
	expectItems(c, map[string]meli.MultiGetResult{"MLU1": itemEntry("MLU1", "active")})

	eng := newTestEngine(t, store.NewKVStore(store.NewMemoryKV()), c, &fakeTokens{},
		WithTracerProvider(tp))
	_, err := eng.RunSync(context.Background(), RunOptions{Force: true})
	require.NoError(t, err)

	spans := recorder.Ended()
	names := make([]string, 0, len(spans))
	var run sdktrace.ReadOnlySpan
	for _, s := range spans {
		names = append(names, s.Name())
		if s.Name() == "sync.run" {
			run = s
		}
	}
	assert.ElementsMatch(t, []string{"sync.enumerate", "sync.enrich", "sync.run"}, names)
	require.NotNil(t, run)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range run.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "SUCCESS", attrs["sync.status"].AsString())
	assert.Equal(t, int64(1), attrs["sync.total"].AsInt64())
	assert.True(t, attrs["sync.force"].AsBool())
}
