package client

import (
	"context"
	"time"
)

// Health is the service health report.
type Health struct {
	Status                string   `json:"status"`
	Store                 string   `json:"store"`
	KV                    string   `json:"kv"`
	CredentialsConfigured bool     `json:"credentials_configured"`
	Missing               []string `json:"missing"`
	SellerConfigured      bool     `json:"seller_configured"`
}

// Quota is the MercadoLibre API usage of the server.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	IntervalMS int64     `json:"interval_ms"`
}

// GetHealth returns the service health, optionally with a store round-trip.
func (c *Client) GetHealth(ctx context.Context, kv bool) (*Health, error) {
	path := "/api/health"
	if kv {
		path += "?kv=true"
	}
	var h Health
	if err := c.get(ctx, path, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// GetQuota returns the MercadoLibre API usage.
func (c *Client) GetQuota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}
