package meli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/trexxeseba/amadolibros-web/internal/metrics"
)

// Strategy selects how the listing search is paged.
type Strategy string

// Pagination strategies. Offset paging is capped by MercadoLibre at 1000
// results per status; use the cursor (scan) strategy for larger catalogs.
const (
	StrategyOffset Strategy = "offset"
	StrategyCursor Strategy = "cursor"
)

// Reasons a pass stopped, reported in PassSummary.StoppedAt.
const (
	StopShortPage     = "short_page"
	StopReportedTotal = "reported_total"
	StopNoCursor      = "no_cursor"
	StopNoResults     = "no_results"
	StopMaxPages      = "max_pages"
	StopMaxItems      = "max_items"
	StopErrors        = "errors"
	StopDeadline      = "deadline"
)

const (
	defaultPageSize          = 50
	maxPageSize              = 100
	defaultMaxPages          = 200
	defaultMaxItems          = 20000
	maxConsecutivePageErrors = 3
)

// Paginator collects every listing id owned by a seller.
type Paginator struct {
	client   ListingClient
	strategy Strategy
	logger   *log.Logger
	pageSize int
	maxPages int
	maxItems int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithStrategy selects offset or cursor paging.
func WithStrategy(s Strategy) PaginatorOption {
	return func(p *Paginator) {
		p.strategy = s
	}
}

// WithPageSize overrides the default page size (max 100).
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		p.pageSize = min(max(size, 1), maxPageSize)
	}
}

// WithMaxPages overrides the per-pass page cap.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// WithMaxItems overrides the total id cap.
func WithMaxItems(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxItems = n
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *log.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(client ListingClient, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:   client,
		strategy: StrategyOffset,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
		maxItems: defaultMaxItems,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PassSummary describes one status pass of an enumeration.
type PassSummary struct {
	Status    string
	Found     int
	New       int
	Pages     int
	Failed    int
	Reported  int
	StoppedAt string
}

// EnumerateResult holds the merged ids of all passes.
type EnumerateResult struct {
	IDs           []string
	TotalReported int
	PagesUsed     int
	FailedPages   int
	Passes        []PassSummary
	// Truncated is set when the context deadline ended the enumeration.
	Truncated bool
}

type passResult struct {
	ids       []string
	total     int
	pages     int
	failed    int
	stoppedAt string
}

// ListAllIDs walks the default (active) search and then the paused search,
// merging ids without duplicates in first-seen order. Transient page errors
// are written to j and skipped; an AuthError aborts the enumeration. When
// the context deadline is reached the ids found so far are returned.
func (p *Paginator) ListAllIDs(ctx context.Context, sellerID string, j Journal) (*EnumerateResult, error) {
	if j == nil {
		j = nopJournal{}
	}

	result := &EnumerateResult{}
	seen := make(map[string]struct{})

	for _, status := range []string{"", StatusFilterPaused} {
		budget := p.maxItems - len(result.IDs)
		if budget <= 0 {
			j.Warnf("item cap of %d reached, skipping %s pass", p.maxItems, passLabel(status))
			break
		}

		var (
			pass *passResult
			err  error
		)
		if p.strategy == StrategyCursor {
			pass, err = p.cursorPass(ctx, sellerID, status, budget, j)
		} else {
			pass, err = p.offsetPass(ctx, sellerID, status, budget, j)
		}
		if err != nil {
			return nil, fmt.Errorf("enumerating %s listings: %w", passLabel(status), err)
		}

		added := 0
		for _, id := range pass.ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			result.IDs = append(result.IDs, id)
			added++
		}

		result.TotalReported += pass.total
		result.PagesUsed += pass.pages
		result.FailedPages += pass.failed
		result.Passes = append(result.Passes, PassSummary{
			Status:    passLabel(status),
			Found:     len(pass.ids),
			New:       added,
			Pages:     pass.pages,
			Failed:    pass.failed,
			Reported:  pass.total,
			StoppedAt: pass.stoppedAt,
		})

		j.Infof("%s pass: %d ids (%d new) over %d pages, reported total %d, stopped at %s",
			passLabel(status), len(pass.ids), added, pass.pages, pass.total, pass.stoppedAt)

		if pass.stoppedAt == StopDeadline {
			result.Truncated = true
			j.Warnf("run deadline reached during the %s pass, keeping %d ids", passLabel(status), len(result.IDs))
			break
		}
	}

	return result, nil
}

func (p *Paginator) offsetPass(
	ctx context.Context,
	sellerID, status string,
	budget int,
	j Journal,
) (*passResult, error) {
	pass := &passResult{}
	consecutive := 0

	for page := range p.maxPages {
		offset := page * p.pageSize

		resp, err := p.client.SearchItemIDs(ctx, SearchRequest{
			SellerID: sellerID,
			Status:   status,
			Offset:   offset,
			Limit:    p.pageSize,
		})
		pass.pages++

		if err != nil {
			if DeadlineReached(ctx, err) {
				pass.stoppedAt = StopDeadline
				return pass, nil
			}
			if IsAuthError(err) || ctx.Err() != nil {
				return nil, err
			}
			metrics.EnumeratePagesTotal.WithLabelValues("error").Inc()
			pass.failed++
			consecutive++
			j.Errorf("%s page %d (offset %d) failed: %v", passLabel(status), page+1, offset, err)

			if consecutive >= maxConsecutivePageErrors {
				pass.stoppedAt = StopErrors
				return pass, nil
			}
			if pass.total > 0 && offset+p.pageSize >= pass.total {
				pass.stoppedAt = StopReportedTotal
				return pass, nil
			}
			continue
		}

		metrics.EnumeratePagesTotal.WithLabelValues("ok").Inc()
		consecutive = 0
		if resp.Total > 0 {
			pass.total = resp.Total
		}
		p.debug("fetched page", "status", passLabel(status), "offset", offset, "ids", len(resp.IDs))

		pass.ids = append(pass.ids, resp.IDs...)
		if len(pass.ids) >= budget {
			pass.ids = pass.ids[:budget]
			pass.stoppedAt = StopMaxItems
			return pass, nil
		}
		if len(resp.IDs) < p.pageSize {
			pass.stoppedAt = StopShortPage
			return pass, nil
		}
		if pass.total > 0 && offset+p.pageSize >= pass.total {
			pass.stoppedAt = StopReportedTotal
			return pass, nil
		}
	}

	pass.stoppedAt = StopMaxPages
	return pass, nil
}

func (p *Paginator) cursorPass(
	ctx context.Context,
	sellerID, status string,
	budget int,
	j Journal,
) (*passResult, error) {
	pass := &passResult{}
	scrollID := ""

	for page := range p.maxPages {
		resp, err := p.client.SearchItemIDs(ctx, SearchRequest{
			SellerID: sellerID,
			Status:   status,
			Limit:    p.pageSize,
			Scan:     true,
			ScrollID: scrollID,
		})
		pass.pages++

		if err != nil {
			if DeadlineReached(ctx, err) {
				pass.stoppedAt = StopDeadline
				return pass, nil
			}
			if IsAuthError(err) || ctx.Err() != nil {
				return nil, err
			}
			metrics.EnumeratePagesTotal.WithLabelValues("error").Inc()
			pass.failed++
			j.Errorf("%s scan page %d failed, ending pass: %v", passLabel(status), page+1, err)
			pass.stoppedAt = StopErrors
			return pass, nil
		}

		metrics.EnumeratePagesTotal.WithLabelValues("ok").Inc()
		if resp.Total > 0 {
			pass.total = resp.Total
		}
		p.debug("fetched scan page", "status", passLabel(status), "page", page+1, "ids", len(resp.IDs))

		if len(resp.IDs) == 0 {
			pass.stoppedAt = StopNoResults
			return pass, nil
		}

		pass.ids = append(pass.ids, resp.IDs...)
		if len(pass.ids) >= budget {
			pass.ids = pass.ids[:budget]
			pass.stoppedAt = StopMaxItems
			return pass, nil
		}
		if resp.ScrollID == "" {
			pass.stoppedAt = StopNoCursor
			return pass, nil
		}
		scrollID = resp.ScrollID
	}

	pass.stoppedAt = StopMaxPages
	return pass, nil
}

func (p *Paginator) debug(msg string, kv ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, kv...)
	}
}

func passLabel(status string) string {
	if status == "" {
		return "active"
	}
	return status
}
