package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/trexxeseba/amadolibros-web/pkg/ranker"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// SearchResult is one ranked listing.
type SearchResult struct {
	domain.ListingDetail
	Score ranker.Breakdown `json:"score"`
}

// SearchResponse is the result of a catalog search.
type SearchResponse struct {
	Status  string         `json:"status"`
	Query   string         `json:"query"`
	Total   int            `json:"total"`
	Source  string         `json:"source"`
	Results []SearchResult `json:"results"`
}

// BookDetails is one listing and where the server found it.
type BookDetails struct {
	Status string               `json:"status"`
	Source string               `json:"source"`
	Item   domain.ListingDetail `json:"item"`
}

// GetCatalog returns the full catalog snapshot.
func (c *Client) GetCatalog(ctx context.Context) (*domain.CatalogSnapshot, error) {
	var snap domain.CatalogSnapshot
	if err := c.get(ctx, "/api/catalog", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetHome returns the active listings shown on the storefront home.
func (c *Client) GetHome(ctx context.Context) ([]domain.ListingDetail, error) {
	var items []domain.ListingDetail
	if err := c.get(ctx, "/api/home", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Search ranks the cached catalog against query. A zero limit uses the
// server default.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp SearchResponse
	if err := c.get(ctx, "/api/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBook returns the details of one listing.
func (c *Client) GetBook(ctx context.Context, id string) (*BookDetails, error) {
	var resp BookDetails
	if err := c.get(ctx, "/api/book-details?id="+url.QueryEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
