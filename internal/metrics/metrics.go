// Package metrics defines Prometheus metrics for amadolibros.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "amadolibros"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// Sync metrics.
var (
	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_runs_total",
		Help:      "Total number of catalog sync runs by final status.",
	}, []string{"status"})

	SyncRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_rejected_total",
		Help:      "Total number of sync requests rejected before running.",
	}, []string{"reason"})

	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of catalog sync runs in seconds.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
	})

	SyncLastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sync_last_success_timestamp",
		Help:      "Unix timestamp of the last successful sync.",
	})

	CatalogListings = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_listings",
		Help:      "Listings in the last persisted snapshot by status.",
	}, []string{"status"})

	EnumeratePagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enumerate_pages_total",
		Help:      "Total number of search pages requested by result.",
	}, []string{"result"})

	EnrichBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrich_batches_total",
		Help:      "Total number of multi-get batches by result.",
	}, []string{"result"})

	EnrichSkippedItemsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrich_skipped_items_total",
		Help:      "Total number of items skipped because of a non-success per-item code.",
	})
)

// MercadoLibre API metrics.
var (
	MeliAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meli_api_calls_total",
		Help:      "Total cumulative MercadoLibre API calls.",
	})

	MeliDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "meli_daily_usage",
		Help:      "Current MercadoLibre API call count within the rolling 24-hour window.",
	})

	MeliDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meli_daily_limit_hits_total",
		Help:      "Total number of times the configured daily call budget was reached.",
	})

	MeliRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meli_rate_limited_total",
		Help:      "Total number of 429 responses received from MercadoLibre.",
	})

	MeliTokenRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meli_token_refreshes_total",
		Help:      "Total number of access token refreshes by result.",
	}, []string{"result"})
)

// Webhook metrics.
var (
	WebhooksReceivedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhooks_received_total",
		Help:      "Total number of webhook notifications received by topic.",
	}, []string{"topic"})

	WebhooksDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhooks_dropped_total",
		Help:      "Total number of notifications dropped because the queue was full.",
	})

	WebhooksProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhooks_processed_total",
		Help:      "Total number of processed notifications by topic and result.",
	}, []string{"topic", "result"})
)

// Store metrics.
var (
	StorePurgedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_purged_entries_total",
		Help:      "Total number of expired cache entries removed by the purge job.",
	})

	StorePurgeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_purge_errors_total",
		Help:      "Total number of failed purge runs.",
	})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of sync notifications sent.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)
