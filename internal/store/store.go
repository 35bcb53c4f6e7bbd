// Package store persists the catalog snapshot, its derived views, sync
// bookkeeping, credentials and webhook events. All business logic depends
// on the Store interface; the bytes live in a pluggable KV backend.
package store

import (
	"context"
	"time"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// Store defines all data access operations of the service.
type Store interface {
	// Catalog
	SaveCatalog(ctx context.Context, snap *domain.CatalogSnapshot) error
	GetCatalog(ctx context.Context) (*domain.CatalogSnapshot, error)
	GetHomeCatalog(ctx context.Context) ([]domain.ListingDetail, error)
	GetItem(ctx context.Context, id string) (*domain.ListingDetail, error)
	PutItem(ctx context.Context, item *domain.ListingDetail) error

	// Sync bookkeeping
	GetLastRun(ctx context.Context) (time.Time, error)
	SetLastRun(ctx context.Context, t time.Time) error
	GetLastReport(ctx context.Context) (*domain.SyncReport, error)
	PutLastReport(ctx context.Context, r *domain.SyncReport) error

	// Credentials
	GetAccessCredential(ctx context.Context) (*domain.AccessCredential, error)
	PutAccessCredential(ctx context.Context, cred *domain.AccessCredential, ttl time.Duration) error
	DeleteAccessCredential(ctx context.Context) error
	GetRefreshToken(ctx context.Context) (string, error)
	PutRefreshToken(ctx context.Context, token string) error

	// Webhooks
	PutWebhook(ctx context.Context, rec *domain.WebhookRecord) error
	GetWebhook(ctx context.Context, topic, id string) (*domain.WebhookRecord, error)
	PutOrder(ctx context.Context, o *domain.OrderRecord) error
	GetOrder(ctx context.Context, id string) (*domain.OrderRecord, error)
	PutStockChange(ctx context.Context, c *domain.StockChange) error

	// Maintenance
	Purge(ctx context.Context) (int64, error)
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
	RoundTrip(ctx context.Context) error
	Close() error
}
