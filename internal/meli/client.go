// Package meli provides the MercadoLibre API client, token management,
// listing enumeration, batch enrichment, and item normalization used by
// the catalog sync.
package meli

import (
	"context"
)

// Search status filters.
const (
	StatusFilterPaused = "paused"
)

// SearchRequest describes one page of the seller listing search.
type SearchRequest struct {
	SellerID string
	Status   string // empty for the default (active) search
	Offset   int
	Limit    int
	Scan     bool   // use search_type=scan with scroll ids
	ScrollID string // continuation cursor returned by the previous scan page
}

// SearchResponse is one page of listing ids.
type SearchResponse struct {
	IDs      []string
	Total    int
	Offset   int
	Limit    int
	ScrollID string
}

// ListingClient defines the MercadoLibre endpoints used by the sync.
type ListingClient interface {
	SearchItemIDs(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	GetItems(ctx context.Context, ids []string) ([]MultiGetResult, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	GetMe(ctx context.Context) (*User, error)
}

// TokenProvider supplies OAuth2 access tokens for API calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
