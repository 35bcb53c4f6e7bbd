package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// loadStaticSnapshot reads the bundled fallback catalog. The file holds
// either a full snapshot object or a bare array of listings.
func loadStaticSnapshot(path string) (*domain.CatalogSnapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading static snapshot: %w", err)
	}

	var snap domain.CatalogSnapshot
	if err := json.Unmarshal(data, &snap); err == nil {
		if snap.Total == 0 {
			snap.Total = len(snap.Items)
		}
		return &snap, nil
	}

	var items []domain.ListingDetail
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing static snapshot: %w", err)
	}
	return &domain.CatalogSnapshot{Items: items, Total: len(items)}, nil
}
