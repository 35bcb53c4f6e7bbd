// Package engine runs the catalog sync pipeline, the webhook processor and
// their schedules.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trexxeseba/amadolibros-web/internal/meli"
	"github.com/trexxeseba/amadolibros-web/internal/metrics"
	"github.com/trexxeseba/amadolibros-web/internal/notify"
	"github.com/trexxeseba/amadolibros-web/internal/store"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

const (
	defaultCooldown    = time.Hour
	defaultMaxDuration = 10 * time.Minute
	defaultSampleSize  = 3
	finishTimeout      = 15 * time.Second
)

const instrumentationName = "github.com/trexxeseba/amadolibros-web/internal/engine"

// tracer follows the global provider installed by telemetry.Setup.
var tracer = otel.Tracer(instrumentationName)

// ErrSyncInProgress is returned when a sync is requested while another
// one is running in this process.
var ErrSyncInProgress = errors.New("sync already in progress")

// CooldownError rejects a sync requested too soon after the previous one.
type CooldownError struct {
	LastRun    time.Time
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("sync cooldown active, retry in %s", e.RetryAfter.Round(time.Second))
}

// TokenSource hands out access tokens and can drop a rejected one.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate(ctx context.Context)
}

// RunOptions controls a single sync run.
type RunOptions struct {
	// Force skips the cooldown guard.
	Force bool
	// IncludeItems returns the full item list in the report.
	IncludeItems bool
}

// Engine orchestrates token, enumeration, enrichment and persistence.
type Engine struct {
	store    store.Store
	client   meli.ListingClient
	tokens   TokenSource
	notifier notify.Notifier
	log      *slog.Logger

	paginator   *meli.Paginator
	enricher    *meli.Enricher
	sellerID    string
	cooldown    time.Duration
	maxDuration time.Duration
	sampleSize  int

	sellerMu       sync.Mutex
	resolvedSeller string

	running atomic.Bool
	nowFunc func() time.Time
	tracer  trace.Tracer
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithPaginator sets the id enumerator.
func WithPaginator(p *meli.Paginator) EngineOption {
	return func(e *Engine) {
		e.paginator = p
	}
}

// WithEnricher sets the batch enricher.
func WithEnricher(en *meli.Enricher) EngineOption {
	return func(e *Engine) {
		e.enricher = en
	}
}

// WithSellerID fixes the seller whose listings are synced. When empty the
// seller is resolved from the token owner.
func WithSellerID(id string) EngineOption {
	return func(e *Engine) {
		e.sellerID = id
	}
}

// WithCooldown sets the minimum time between unforced runs. Zero disables
// the guard.
func WithCooldown(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.cooldown = d
	}
}

// WithMaxDuration bounds a single run. Zero means no deadline. A run that
// reaches the deadline saves the listings fetched so far with a WARNING
// status.
func WithMaxDuration(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.maxDuration = d
	}
}

// WithSampleSize sets how many items are echoed in the report sample.
func WithSampleSize(n int) EngineOption {
	return func(e *Engine) {
		e.sampleSize = n
	}
}

// WithNowFunc overrides the clock for testing.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// WithTracerProvider traces sync runs with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) EngineOption {
	return func(e *Engine) {
		e.tracer = tp.Tracer(instrumentationName)
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	c meli.ListingClient,
	t TokenSource,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:       s,
		client:      c,
		tokens:      t,
		notifier:    n,
		log:         slog.Default(),
		cooldown:    defaultCooldown,
		maxDuration: defaultMaxDuration,
		sampleSize:  defaultSampleSize,
		nowFunc:     time.Now,
		tracer:      tracer,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.paginator == nil {
		eng.paginator = meli.NewPaginator(c)
	}
	if eng.enricher == nil {
		eng.enricher = meli.NewEnricher(c)
	}
	return eng
}

// Running reports whether a sync is in progress in this process.
func (eng *Engine) Running() bool {
	return eng.running.Load()
}

// RunSync executes one full catalog sync. The returned error is only set
// when the run was rejected (ErrSyncInProgress, *CooldownError); failures
// during the run are reported through the SyncReport status.
func (eng *Engine) RunSync(ctx context.Context, opts RunOptions) (*domain.SyncReport, error) {
	ctx, span := eng.tracer.Start(ctx, "sync.run", trace.WithAttributes(
		attribute.Bool("sync.force", opts.Force),
	))
	defer span.End()

	if !eng.running.CompareAndSwap(false, true) {
		metrics.SyncRejectedTotal.WithLabelValues("in_progress").Inc()
		span.SetAttributes(attribute.String("sync.rejected", "in_progress"))
		return nil, ErrSyncInProgress
	}
	defer eng.running.Store(false)

	started := eng.nowFunc()
	if err := eng.checkCooldown(ctx, started, opts.Force); err != nil {
		metrics.SyncRejectedTotal.WithLabelValues("cooldown").Inc()
		span.SetAttributes(attribute.String("sync.rejected", "cooldown"))
		return nil, err
	}
	if err := eng.store.SetLastRun(ctx, started); err != nil {
		eng.log.Warn("recording sync start", "error", err)
	}

	if eng.maxDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, eng.maxDuration)
		defer cancel()
	}

	sl := NewSyncLog(eng.log)
	report := eng.run(ctx, started, opts, sl)
	report.Logs = sl.Lines()
	report.Stats.DurationSeconds = int(eng.nowFunc().Sub(started).Seconds())

	span.SetAttributes(
		attribute.String("sync.status", string(report.Status)),
		attribute.Int("sync.total", report.Stats.Total),
		attribute.Int("sync.failed_pages", report.Stats.FailedPages),
		attribute.Int("sync.failed_batches", report.Stats.FailedBatches),
	)
	if report.Status == domain.SyncError {
		span.SetStatus(codes.Error, report.Error)
	}

	eng.finish(ctx, report)
	return report, nil
}

func (eng *Engine) checkCooldown(ctx context.Context, now time.Time, force bool) error {
	if force || eng.cooldown <= 0 {
		return nil
	}

	last, err := eng.store.GetLastRun(ctx)
	if err != nil {
		if !store.IsNotFound(err) {
			eng.log.Warn("reading last sync time", "error", err)
		}
		return nil
	}

	if since := now.Sub(last); since < eng.cooldown {
		return &CooldownError{LastRun: last, RetryAfter: eng.cooldown - since}
	}
	return nil
}

func (eng *Engine) run(
	ctx context.Context,
	started time.Time,
	opts RunOptions,
	sl *SyncLog,
) *domain.SyncReport {
	report := &domain.SyncReport{StartedAt: started}
	sl.Infof("sync started at %s", started.UTC().Format(time.RFC3339))

	if _, err := eng.tokens.Token(ctx); err != nil {
		return eng.fail(ctx, report, sl, fmt.Errorf("obtaining access token: %w", err))
	}
	sl.Infof("access token ready")

	sellerID, err := eng.resolveSeller(ctx, sl)
	if err != nil {
		return eng.fail(ctx, report, sl, err)
	}

	enumCtx, enumSpan := eng.tracer.Start(ctx, "sync.enumerate")
	enum, err := eng.paginator.ListAllIDs(enumCtx, sellerID, sl)
	enumSpan.End()
	if err != nil {
		return eng.fail(ctx, report, sl, err)
	}
	report.Stats.TotalReported = enum.TotalReported
	report.Stats.FailedPages = enum.FailedPages
	report.Stats.Partial = enum.Truncated

	if len(enum.IDs) == 0 {
		sl.Warnf("no listings found for seller %s, previous snapshot kept", sellerID)
		report.Status = domain.SyncWarning
		return report
	}
	sl.Infof("%d unique listing ids collected in %d pages", len(enum.IDs), enum.PagesUsed)

	enrichCtx, enrichSpan := eng.tracer.Start(ctx, "sync.enrich",
		trace.WithAttributes(attribute.Int("sync.ids", len(enum.IDs))))
	enr, err := eng.enricher.Enrich(enrichCtx, enum.IDs, sl)
	enrichSpan.End()
	if err != nil {
		return eng.fail(ctx, report, sl, fmt.Errorf("enriching listings: %w", err))
	}
	report.Stats.FailedBatches = enr.FailedBatches
	report.Stats.SkippedItems = enr.SkippedItems
	report.Stats.Partial = report.Stats.Partial || enr.Truncated
	report.Stats.CountStatuses(enr.Items)

	if len(enr.Items) == 0 {
		sl.Warnf("%d ids found but no listing could be fetched, previous snapshot kept", len(enum.IDs))
		report.Status = domain.SyncWarning
		return report
	}

	finished := eng.nowFunc()
	snap := &domain.CatalogSnapshot{
		Items:           enr.Items,
		Total:           len(enr.Items),
		TotalReported:   enum.TotalReported,
		LastSync:        finished,
		DurationSeconds: int(finished.Sub(started).Seconds()),
	}
	// The run deadline may already have passed.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finishTimeout)
	err = eng.store.SaveCatalog(saveCtx, snap)
	cancel()
	if err != nil {
		return eng.fail(ctx, report, sl, fmt.Errorf("saving catalog: %w", err))
	}
	report.Stats.LastSync = finished
	sl.Infof("snapshot saved: %d listings (%d active, %d paused, %d closed)",
		report.Stats.Total, report.Stats.Active, report.Stats.Paused, report.Stats.Closed)

	report.Status = domain.SyncSuccess
	if report.Stats.Partial {
		sl.Warnf("run stopped at its %s deadline, snapshot holds %d of %d ids",
			eng.maxDuration, len(enr.Items), len(enum.IDs))
		report.Status = domain.SyncWarning
	}
	report.Sample = enr.Items[:min(eng.sampleSize, len(enr.Items))]
	if opts.IncludeItems {
		report.Items = enr.Items
	}
	return report
}

// SellerID returns the configured seller id. Without one, the owner of the
// access token is looked up once and remembered for the life of the Engine.
func (eng *Engine) SellerID(ctx context.Context) (string, error) {
	if eng.sellerID != "" {
		return eng.sellerID, nil
	}

	eng.sellerMu.Lock()
	defer eng.sellerMu.Unlock()
	if eng.resolvedSeller != "" {
		return eng.resolvedSeller, nil
	}

	me, err := eng.client.GetMe(ctx)
	if err != nil {
		return "", fmt.Errorf("resolving seller id: %w", err)
	}
	eng.resolvedSeller = strconv.FormatInt(me.ID, 10)
	eng.log.Info("seller resolved from token owner", "seller_id", eng.resolvedSeller, "nickname", me.Nickname)
	return eng.resolvedSeller, nil
}

func (eng *Engine) resolveSeller(ctx context.Context, sl *SyncLog) (string, error) {
	id, err := eng.SellerID(ctx)
	if err != nil {
		return "", err
	}
	if eng.sellerID == "" {
		sl.Infof("seller resolved from token owner: %s", id)
	}
	return id, nil
}

func (eng *Engine) fail(
	ctx context.Context,
	report *domain.SyncReport,
	sl *SyncLog,
	err error,
) *domain.SyncReport {
	report.Status = domain.SyncError
	report.Error = err.Error()

	if ce, ok := meli.IsConfigError(err); ok {
		report.Missing = ce.Missing
	}
	if meli.IsAuthError(err) {
		eng.tokens.Invalidate(context.WithoutCancel(ctx))
		sl.Errorf("authentication rejected, cached token dropped")
	}

	sl.Errorf("sync failed: %v", err)
	return report
}

// finish records metrics, persists the report and notifies on anything
// other than SUCCESS. None of these steps changes the report status.
func (eng *Engine) finish(ctx context.Context, report *domain.SyncReport) {
	metrics.SyncRunsTotal.WithLabelValues(string(report.Status)).Inc()
	metrics.SyncDuration.Observe(float64(report.Stats.DurationSeconds))
	if report.Status == domain.SyncSuccess {
		metrics.SyncLastSuccess.Set(float64(report.Stats.LastSync.Unix()))
		metrics.CatalogListings.WithLabelValues(string(domain.StatusActive)).Set(float64(report.Stats.Active))
		metrics.CatalogListings.WithLabelValues(string(domain.StatusPaused)).Set(float64(report.Stats.Paused))
		metrics.CatalogListings.WithLabelValues(string(domain.StatusClosed)).Set(float64(report.Stats.Closed))
	}

	// The run deadline may already have passed.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finishTimeout)
	defer cancel()

	if err := eng.store.PutLastReport(ctx, report); err != nil {
		eng.log.Error("persisting sync report", "error", err)
	}

	eng.log.Info("sync finished",
		"status", report.Status,
		"total", report.Stats.Total,
		"active", report.Stats.Active,
		"failed_pages", report.Stats.FailedPages,
		"failed_batches", report.Stats.FailedBatches,
		"duration_s", report.Stats.DurationSeconds,
	)

	if report.Status == domain.SyncSuccess || eng.notifier == nil {
		return
	}
	if err := eng.notifier.SendSyncReport(ctx, report); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Warn("sending sync notification", "error", err)
		return
	}
	metrics.NotificationsSentTotal.Inc()
}
