package meli

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/trexxeseba/amadolibros-web/internal/metrics"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

const progressEvery = 50

// Enricher fetches full listing details for ids in multi-get batches.
type Enricher struct {
	client    ListingClient
	logger    *log.Logger
	batchSize int
}

// EnricherOption configures the Enricher.
type EnricherOption func(*Enricher)

// WithBatchSize overrides the batch size, clamped to [1, MaxMultiGet].
func WithBatchSize(n int) EnricherOption {
	return func(e *Enricher) {
		e.batchSize = min(max(n, 1), MaxMultiGet)
	}
}

// WithEnricherLogger sets the logger.
func WithEnricherLogger(l *log.Logger) EnricherOption {
	return func(e *Enricher) {
		e.logger = l
	}
}

// NewEnricher creates a new Enricher.
func NewEnricher(client ListingClient, opts ...EnricherOption) *Enricher {
	e := &Enricher{
		client:    client,
		batchSize: MaxMultiGet,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnrichResult holds the normalized listings of a run.
type EnrichResult struct {
	Items         []domain.ListingDetail
	Batches       int
	FailedBatches int
	SkippedItems  int
	// Truncated is set when the context deadline stopped the run before
	// every batch was fetched.
	Truncated bool
}

// Enrich fetches and normalizes every id. A failed batch is written to j
// and skipped; entries with a non-200 code or an undecodable body are
// skipped one by one. Reaching the context deadline ends the run with the
// items collected so far and a nil error. Only an AuthError or a canceled
// context returns an error.
func (e *Enricher) Enrich(ctx context.Context, ids []string, j Journal) (*EnrichResult, error) {
	if j == nil {
		j = nopJournal{}
	}

	batches := chunk(ids, e.batchSize)
	res := &EnrichResult{
		Items:   make([]domain.ListingDetail, 0, len(ids)),
		Batches: len(batches),
	}

	for i, batch := range batches {
		entries, err := e.client.GetItems(ctx, batch)
		if err != nil {
			if DeadlineReached(ctx, err) {
				res.Truncated = true
				j.Warnf("run deadline reached after %d/%d batches, keeping %d items",
					i, len(batches), len(res.Items))
				break
			}
			if IsAuthError(err) || ctx.Err() != nil {
				return res, err
			}
			metrics.EnrichBatchesTotal.WithLabelValues("error").Inc()
			res.FailedBatches++
			j.Errorf("batch %d/%d failed (%d ids): %v", i+1, len(batches), len(batch), err)
			continue
		}
		metrics.EnrichBatchesTotal.WithLabelValues("ok").Inc()

		want := make(map[string]struct{}, len(batch))
		for _, id := range batch {
			want[id] = struct{}{}
		}

		for _, entry := range entries {
			if entry.Code != http.StatusOK {
				res.SkippedItems++
				continue
			}
			item, err := DecodeItem(entry.Body)
			if err != nil {
				res.SkippedItems++
				continue
			}
			if _, ok := want[item.ID]; !ok {
				// unrequested or duplicate entry
				continue
			}
			delete(want, item.ID)
			res.Items = append(res.Items, ToListingDetail(item))
		}

		if e.logger != nil {
			e.logger.Debug("enriched batch", "batch", i+1, "of", len(batches), "items", len(res.Items))
		}
		if (i+1)%progressEvery == 0 {
			j.Infof("enriched %d/%d batches, %d items so far", i+1, len(batches), len(res.Items))
		}
	}

	if res.SkippedItems > 0 {
		metrics.EnrichSkippedItemsTotal.Add(float64(res.SkippedItems))
		j.Warnf("skipped %d items with a non-success status or an unreadable body", res.SkippedItems)
	}
	j.Infof("enriched %d items from %d ids in %d batches (%d failed)",
		len(res.Items), len(ids), len(batches), res.FailedBatches)

	return res, nil
}

func chunk(ids []string, size int) [][]string {
	if size <= 0 {
		size = MaxMultiGet
	}
	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, ids[start:end])
	}
	return batches
}
