// Package domain defines the core business types for the amadolibros catalog.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingStatus is the publication status of a marketplace listing.
type ListingStatus string

// Listing status constants. Any other remote status is carried through
// unchanged and counted in none of the status buckets.
const (
	StatusActive ListingStatus = "active"
	StatusPaused ListingStatus = "paused"
	StatusClosed ListingStatus = "closed"
)

// Shipping describes how a listing is delivered.
type Shipping struct {
	Mode         string `json:"mode"`
	FreeShipping bool   `json:"free_shipping"`
	LocalPickUp  bool   `json:"local_pick_up"`
	LogisticType string `json:"logistic_type,omitempty"`
}

// ListingDetail is a normalized marketplace listing (one book).
type ListingDetail struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Price             decimal.Decimal   `json:"price"`
	Currency          string            `json:"currency"`
	Status            ListingStatus     `json:"status"`
	Condition         string            `json:"condition,omitempty"`
	AvailableQuantity int               `json:"available_quantity"`
	ThumbnailURL      string            `json:"thumbnail"`
	ImageURL          string            `json:"image"`
	Permalink         string            `json:"permalink"`
	Shipping          Shipping          `json:"shipping"`
	Attributes        map[string]string `json:"attributes"`
}

// IsActive reports whether the listing is published and purchasable.
func (l *ListingDetail) IsActive() bool {
	return l.Status == StatusActive
}

// Attribute returns the first non-empty attribute among names.
func (l *ListingDetail) Attribute(names ...string) string {
	for _, n := range names {
		if v := l.Attributes[n]; v != "" {
			return v
		}
	}
	return ""
}

// CatalogSnapshot is the full set of listings persisted by one sync run.
type CatalogSnapshot struct {
	Items           []ListingDetail `json:"items"`
	Total           int             `json:"total"`
	TotalReported   int             `json:"total_reported"`
	LastSync        time.Time       `json:"last_sync"`
	DurationSeconds int             `json:"duration_seconds"`
}

// ActiveItems returns the active-only view of the snapshot.
func (s *CatalogSnapshot) ActiveItems() []ListingDetail {
	active := make([]ListingDetail, 0, len(s.Items))
	for i := range s.Items {
		if s.Items[i].IsActive() {
			active = append(active, s.Items[i])
		}
	}
	return active
}

// Find returns the listing with the given id, or nil.
func (s *CatalogSnapshot) Find(id string) *ListingDetail {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// AccessCredential is a short-lived bearer token and its absolute expiry.
type AccessCredential struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ValidAt reports whether the credential can still be used at t, keeping
// margin of headroom before expiry.
func (c *AccessCredential) ValidAt(t time.Time, margin time.Duration) bool {
	return c != nil && c.AccessToken != "" && t.Before(c.ExpiresAt.Add(-margin))
}

// SyncStatus is the outcome of a sync run.
type SyncStatus string

// Sync status constants.
const (
	SyncSuccess SyncStatus = "SUCCESS"
	SyncWarning SyncStatus = "WARNING"
	SyncError   SyncStatus = "ERROR"
)

// SyncStats summarises a sync run.
type SyncStats struct {
	Total           int       `json:"total"`
	TotalReported   int       `json:"total_reported"`
	Active          int       `json:"active"`
	Paused          int       `json:"paused"`
	Closed          int       `json:"closed"`
	FailedPages     int       `json:"failed_pages"`
	FailedBatches   int       `json:"failed_batches"`
	SkippedItems    int       `json:"skipped_items"`
	Partial         bool      `json:"partial,omitempty"`
	LastSync        time.Time `json:"last_sync"`
	DurationSeconds int       `json:"duration_seconds"`
}

// CountStatuses fills the per-status counters from items.
func (s *SyncStats) CountStatuses(items []ListingDetail) {
	s.Total = len(items)
	s.Active, s.Paused, s.Closed = 0, 0, 0
	for i := range items {
		switch items[i].Status {
		case StatusActive:
			s.Active++
		case StatusPaused:
			s.Paused++
		case StatusClosed:
			s.Closed++
		}
	}
}

// SyncReport is the result of a sync run as returned to callers and
// persisted as the last report.
type SyncReport struct {
	Status    SyncStatus      `json:"status"`
	Stats     SyncStats       `json:"stats"`
	Logs      []string        `json:"logs"`
	Error     string          `json:"error,omitempty"`
	Missing   []string        `json:"missing,omitempty"`
	StartedAt time.Time       `json:"started_at"`
	Sample    []ListingDetail `json:"sample,omitempty"`
	Items     []ListingDetail `json:"items,omitempty"`
}

// WebhookNotification is the payload MercadoLibre posts for a change event.
type WebhookNotification struct {
	ID            string    `json:"_id"`
	Resource      string    `json:"resource"`
	UserID        int64     `json:"user_id"`
	Topic         string    `json:"topic"`
	ApplicationID int64     `json:"application_id"`
	Attempts      int       `json:"attempts"`
	Sent          time.Time `json:"sent"`
	Received      time.Time `json:"received"`
}

// Webhook topic constants.
const (
	TopicItems          = "items"
	TopicOrders         = "orders_v2"
	TopicStockLocations = "stock_locations"
)

// WebhookRecord is a stored notification with its processing state.
type WebhookRecord struct {
	Notification WebhookNotification `json:"notification"`
	ReceivedAt   time.Time           `json:"received_at"`
	Processed    bool                `json:"processed"`
	ProcessedAt  *time.Time          `json:"processed_at,omitempty"`
	Error        string              `json:"error,omitempty"`
}

// OrderRecord is the cached summary of a marketplace order.
type OrderRecord struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	BuyerID     int64           `json:"buyer_id"`
	ItemIDs     []string        `json:"item_ids"`
	DateCreated time.Time       `json:"date_created"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StockChange records that a stock location notification arrived.
type StockChange struct {
	Resource   string    `json:"resource"`
	ReceivedAt time.Time `json:"received_at"`
}
