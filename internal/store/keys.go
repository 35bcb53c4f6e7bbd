package store

import "time"

// Persisted keys, before the optional prefix.
const (
	KeyCatalog      = "full_catalog"
	KeyHomeCatalog  = "HOME_CATALOG"
	KeyAccessToken  = "meli_access_token"
	KeyRefreshToken = "meli_refresh_token"
	KeyLastRun      = "sync:last_run"
	KeyLastReport   = "sync:last_report"
	keyHealthProbe  = "health:probe"
)

// Retention of derived and event keys.
const (
	ItemTTL    = 7 * 24 * time.Hour
	WebhookTTL = 24 * time.Hour
	OrderTTL   = 30 * 24 * time.Hour
	StockTTL   = time.Hour
	probeTTL   = time.Minute
)

// ItemKey is the per-listing detail key.
func ItemKey(id string) string { return "item:" + id }

// WebhookKey is the key of a received notification.
func WebhookKey(topic, id string) string { return "webhook:" + topic + ":" + id }

// OrderKey is the key of a cached order.
func OrderKey(id string) string { return "order:" + id }

// StockKey is the key of a stock change marker.
func StockKey(resource string) string { return "stock:" + resource }
