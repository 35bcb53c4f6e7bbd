package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trexxeseba/amadolibros-web/internal/meli"
	"github.com/trexxeseba/amadolibros-web/internal/metrics"
	"github.com/trexxeseba/amadolibros-web/internal/store"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

const (
	defaultQueueSize      = 256
	webhookProcessTimeout = 30 * time.Second
	sellerLookupTimeout   = 5 * time.Second
)

// SellerResolver provides the seller whose notifications are processed.
// Engine implements it.
type SellerResolver interface {
	SellerID(ctx context.Context) (string, error)
}

// WebhookProcessor applies MercadoLibre change notifications as partial
// refreshes of the cache. Notifications are queued by the HTTP handler and
// drained by a single worker goroutine.
type WebhookProcessor struct {
	store    store.Store
	client   meli.ListingClient
	sellerID string
	sellers  SellerResolver
	log      *slog.Logger
	queue    chan domain.WebhookNotification
	nowFunc  func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// WebhookOption configures the WebhookProcessor.
type WebhookOption func(*WebhookProcessor)

// WithWebhookLogger sets the logger.
func WithWebhookLogger(l *slog.Logger) WebhookOption {
	return func(w *WebhookProcessor) {
		w.log = l
	}
}

// WithQueueSize sets the capacity of the notification queue.
func WithQueueSize(n int) WebhookOption {
	return func(w *WebhookProcessor) {
		w.queue = make(chan domain.WebhookNotification, max(n, 1))
	}
}

// WithWebhookSellerID restricts processing to notifications for this
// seller.
func WithWebhookSellerID(id string) WebhookOption {
	return func(w *WebhookProcessor) {
		w.sellerID = id
	}
}

// WithSellerResolver looks the seller up through r when no seller id is
// set. Without either, every notification is accepted.
func WithSellerResolver(r SellerResolver) WebhookOption {
	return func(w *WebhookProcessor) {
		w.sellers = r
	}
}

// WithWebhookNowFunc overrides the clock for testing.
func WithWebhookNowFunc(f func() time.Time) WebhookOption {
	return func(w *WebhookProcessor) {
		w.nowFunc = f
	}
}

// NewWebhookProcessor creates a processor. Call Start to run the worker.
func NewWebhookProcessor(s store.Store, c meli.ListingClient, opts ...WebhookOption) *WebhookProcessor {
	w := &WebhookProcessor{
		store:   s,
		client:  c,
		log:     slog.Default(),
		queue:   make(chan domain.WebhookNotification, defaultQueueSize),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Accepts reports whether n belongs to the seller. A seller that cannot be
// resolved rejects the notification.
func (w *WebhookProcessor) Accepts(ctx context.Context, n *domain.WebhookNotification) bool {
	seller := w.sellerID
	if seller == "" && w.sellers != nil {
		ctx, cancel := context.WithTimeout(ctx, sellerLookupTimeout)
		defer cancel()

		var err error
		if seller, err = w.sellers.SellerID(ctx); err != nil {
			w.log.Warn("resolving seller for webhook", "topic", n.Topic, "error", err)
			return false
		}
	}
	return seller == "" || strconv.FormatInt(n.UserID, 10) == seller
}

// Enqueue queues n without blocking. It returns false when the queue is
// full and the notification was dropped.
func (w *WebhookProcessor) Enqueue(n domain.WebhookNotification) bool {
	metrics.WebhooksReceivedTotal.WithLabelValues(n.Topic).Inc()
	select {
	case w.queue <- n:
		return true
	default:
		metrics.WebhooksDroppedTotal.Inc()
		w.log.Warn("webhook queue full, notification dropped",
			"topic", n.Topic,
			"resource", n.Resource,
		)
		return false
	}
}

// Start runs the worker until ctx is canceled or Stop is called.
func (w *WebhookProcessor) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done != nil {
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case n := <-w.queue:
				pctx, cancel := context.WithTimeout(ctx, webhookProcessTimeout)
				if err := w.Process(pctx, n); err != nil {
					w.log.Warn("webhook processing failed",
						"topic", n.Topic,
						"resource", n.Resource,
						"error", err,
					)
				}
				cancel()
			}
		}
	}(w.done)

	w.log.Info("webhook processor started", "queue_size", cap(w.queue))
}

// Stop halts the worker and waits for the in-flight notification.
// Queued notifications are discarded.
func (w *WebhookProcessor) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	w.log.Info("webhook processor stopped")
}

// Process handles one notification synchronously: it records the event,
// refreshes the affected resource and marks the record processed.
func (w *WebhookProcessor) Process(ctx context.Context, n domain.WebhookNotification) (err error) {
	ctx, span := tracer.Start(ctx, "webhook.process", trace.WithAttributes(
		attribute.String("webhook.topic", n.Topic),
		attribute.String("webhook.resource", n.Resource),
	))
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rec := &domain.WebhookRecord{
		Notification: n,
		ReceivedAt:   w.nowFunc(),
	}
	if err := w.store.PutWebhook(ctx, rec); err != nil {
		metrics.WebhooksProcessedTotal.WithLabelValues(n.Topic, "error").Inc()
		return fmt.Errorf("recording webhook: %w", err)
	}

	procErr := w.apply(ctx, n)

	processedAt := w.nowFunc()
	rec.Processed = true
	rec.ProcessedAt = &processedAt
	if procErr != nil {
		rec.Error = procErr.Error()
	}

	err = w.store.PutWebhook(ctx, rec)
	if err != nil {
		err = fmt.Errorf("marking webhook processed: %w", err)
	}
	err = errors.Join(procErr, err)

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.WebhooksProcessedTotal.WithLabelValues(n.Topic, result).Inc()
	return err
}

func (w *WebhookProcessor) apply(ctx context.Context, n domain.WebhookNotification) error {
	switch n.Topic {
	case domain.TopicItems:
		id := resourceID(n.Resource)
		item, err := w.client.GetItem(ctx, id)
		if err != nil {
			return fmt.Errorf("fetching item %s: %w", id, err)
		}
		detail := meli.ToListingDetail(item)
		if detail.ID == "" {
			detail.ID = id
		}
		if err := w.store.PutItem(ctx, &detail); err != nil {
			return fmt.Errorf("caching item %s: %w", id, err)
		}
		w.log.Debug("item refreshed from webhook", "id", id, "status", detail.Status)

	case domain.TopicOrders:
		id := resourceID(n.Resource)
		order, err := w.client.GetOrder(ctx, id)
		if err != nil {
			return fmt.Errorf("fetching order %s: %w", id, err)
		}
		rec := meli.ToOrderRecord(order, w.nowFunc())
		if rec.ID == "" || rec.ID == "0" {
			rec.ID = id
		}
		if err := w.store.PutOrder(ctx, &rec); err != nil {
			return fmt.Errorf("caching order %s: %w", id, err)
		}

	case domain.TopicStockLocations:
		change := &domain.StockChange{Resource: n.Resource, ReceivedAt: w.nowFunc()}
		if err := w.store.PutStockChange(ctx, change); err != nil {
			return fmt.Errorf("recording stock change: %w", err)
		}

	default:
		w.log.Debug("webhook topic recorded only", "topic", n.Topic)
	}
	return nil
}

// resourceID returns the last path segment of a resource such as
// "/items/MLU123".
func resourceID(resource string) string {
	resource = strings.TrimRight(resource, "/")
	if i := strings.LastIndexByte(resource, '/'); i >= 0 {
		return resource[i+1:]
	}
	return resource
}
