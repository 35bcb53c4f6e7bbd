package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// SyncOptions controls a triggered sync.
type SyncOptions struct {
	Force bool
	Items bool
}

// SyncStatus is the last persisted sync report.
type SyncStatus struct {
	Running bool               `json:"running"`
	Report  *domain.SyncReport `json:"report"`
}

// Sync triggers a catalog sync and waits for its report. An ERROR report is
// returned without error: the server answers it with HTTP 500 but the body
// is still the report.
func (c *Client) Sync(ctx context.Context, opts SyncOptions) (*domain.SyncReport, error) {
	params := url.Values{}
	if opts.Force {
		params.Set("force", "true")
	}
	if opts.Items {
		params.Set("items", "true")
	}
	path := "/api/sync-catalog"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var report domain.SyncReport
	err := c.post(ctx, path, nil, &report)
	if err == nil {
		return &report, nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusInternalServerError {
		if jerr := json.Unmarshal(apiErr.Body, &report); jerr == nil && report.Status == domain.SyncError {
			return &report, nil
		}
	}
	return nil, err
}

// GetSyncStatus returns the report of the most recent sync.
func (c *Client) GetSyncStatus(ctx context.Context) (*SyncStatus, error) {
	var status SyncStatus
	if err := c.get(ctx, "/api/sync-status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}
