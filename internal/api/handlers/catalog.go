package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"github.com/trexxeseba/amadolibros-web/internal/meli"
	"github.com/trexxeseba/amadolibros-web/internal/store"
	"github.com/trexxeseba/amadolibros-web/pkg/ranker"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// homeCacheControl lets the CDN in front of the storefront serve the home
// list while a new sync lands.
const homeCacheControl = "public, s-maxage=60, stale-while-revalidate=600"

// Listing sources reported by the read endpoints.
const (
	SourceHome     = "home"
	SourceSnapshot = "snapshot"
	SourceStatic   = "static"
	SourceCache    = "cache"
	SourceRemote   = "remote"
	SourceEmpty    = "empty"
)

// ItemFetcher fetches a single listing from MercadoLibre.
type ItemFetcher interface {
	GetItem(ctx context.Context, id string) (*meli.Item, error)
}

// CatalogHandler serves the storefront read endpoints. Only the book
// details endpoint may call MercadoLibre, and remote failures are never
// surfaced to the caller.
type CatalogHandler struct {
	store      store.Store
	fetcher    ItemFetcher
	staticPath string
	loadStatic func() (*domain.CatalogSnapshot, error)
	weights    ranker.Weights
	log        *slog.Logger
}

// CatalogOption configures the CatalogHandler.
type CatalogOption func(*CatalogHandler)

// WithItemFetcher enables the lazy remote lookup of book details.
func WithItemFetcher(f ItemFetcher) CatalogOption {
	return func(h *CatalogHandler) {
		h.fetcher = f
	}
}

// WithStaticSnapshot sets the fallback catalog file. It is read on first
// use and kept for the life of the handler.
func WithStaticSnapshot(path string) CatalogOption {
	return func(h *CatalogHandler) {
		h.staticPath = path
	}
}

// WithCatalogLogger sets the logger.
func WithCatalogLogger(l *slog.Logger) CatalogOption {
	return func(h *CatalogHandler) {
		h.log = l
	}
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s store.Store, opts ...CatalogOption) *CatalogHandler {
	h := &CatalogHandler{
		store:   s,
		weights: ranker.DefaultWeights(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.loadStatic = sync.OnceValues(func() (*domain.CatalogSnapshot, error) {
		snap, err := loadStaticSnapshot(h.staticPath)
		if err != nil {
			h.log.Warn("static snapshot unavailable", "path", h.staticPath, "error", err)
		}
		return snap, err
	})
	return h
}

// CatalogOutput is the cached snapshot, returned verbatim.
type CatalogOutput struct {
	Body *domain.CatalogSnapshot
}

// GetCatalog returns the full catalog snapshot.
func (h *CatalogHandler) GetCatalog(ctx context.Context, _ *struct{}) (*CatalogOutput, error) {
	snap, err := h.store.GetCatalog(ctx)
	if err == nil {
		return &CatalogOutput{Body: snap}, nil
	}
	h.logMiss("catalog", err)

	if snap := h.static(); snap != nil {
		return &CatalogOutput{Body: snap}, nil
	}
	return nil, huma.Error404NotFound("catalog not synced yet")
}

// HomeOutput is the active listing array consumed by the storefront home.
type HomeOutput struct {
	CacheControl string `header:"Cache-Control"`
	Source       string `header:"X-Catalog-Source" doc:"Where the list came from"`
	Body         []domain.ListingDetail
}

// GetHome returns the active listings. It never fails: with no data
// available the list is empty.
func (h *CatalogHandler) GetHome(ctx context.Context, _ *struct{}) (*HomeOutput, error) {
	items, source := h.activeListings(ctx)
	return &HomeOutput{
		CacheControl: homeCacheControl,
		Source:       source,
		Body:         items,
	}, nil
}

func (h *CatalogHandler) activeListings(ctx context.Context) ([]domain.ListingDetail, string) {
	home, err := h.store.GetHomeCatalog(ctx)
	if err == nil {
		return home, SourceHome
	}
	h.logMiss("home catalog", err)

	snap, err := h.store.GetCatalog(ctx)
	if err == nil {
		return snap.ActiveItems(), SourceSnapshot
	}
	h.logMiss("catalog", err)

	if snap := h.static(); snap != nil {
		return snap.ActiveItems(), SourceStatic
	}
	return []domain.ListingDetail{}, SourceEmpty
}

// allListings returns every cached listing for search. The snapshot is
// preferred because it also holds paused listings.
func (h *CatalogHandler) allListings(ctx context.Context) ([]domain.ListingDetail, string) {
	snap, err := h.store.GetCatalog(ctx)
	if err == nil {
		return snap.Items, SourceSnapshot
	}
	h.logMiss("catalog", err)

	home, err := h.store.GetHomeCatalog(ctx)
	if err == nil {
		return home, SourceHome
	}
	h.logMiss("home catalog", err)

	if snap := h.static(); snap != nil {
		return snap.Items, SourceStatic
	}
	return nil, SourceEmpty
}

// SearchInput is the query of the search endpoint.
type SearchInput struct {
	Q     string `query:"q"     doc:"Title, author, ISBN or publisher" example:"borges ficciones"`
	Limit int    `query:"limit" doc:"Maximum results (default and max 50)" example:"20" minimum:"0"`
}

// SearchResult is one ranked listing.
type SearchResult struct {
	domain.ListingDetail
	Score ranker.Breakdown `json:"score"`
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		Status  string         `json:"status"  example:"ok"`
		Query   string         `json:"query"   example:"borges ficciones"`
		Total   int            `json:"total"   example:"3" doc:"Number of results returned"`
		Source  string         `json:"source"  example:"snapshot" doc:"Where the searched listings came from"`
		Results []SearchResult `json:"results"`
	}
}

// Search ranks the cached catalog against the query. A blank query yields
// no results.
func (h *CatalogHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	out := &SearchOutput{}
	out.Body.Status = "ok"
	out.Body.Query = input.Q
	out.Body.Results = []SearchResult{}

	if ranker.Fold(input.Q) == "" {
		out.Body.Source = SourceEmpty
		return out, nil
	}

	items, source := h.allListings(ctx)
	out.Body.Source = source

	for _, m := range ranker.Rank(items, input.Q, input.Limit, h.weights) {
		out.Body.Results = append(out.Body.Results, SearchResult{ListingDetail: m.Item, Score: m.Score})
	}
	out.Body.Total = len(out.Body.Results)
	return out, nil
}

// BookInput identifies a listing.
type BookInput struct {
	ID string `query:"id" required:"true" minLength:"1" doc:"MercadoLibre listing id" example:"MLU123456789"`
}

// BookOutput is the response body for the book details endpoint.
type BookOutput struct {
	Body struct {
		Status string               `json:"status" example:"ok"`
		Source string               `json:"source" example:"cache" doc:"cache, snapshot, static or remote"`
		Item   domain.ListingDetail `json:"item"`
	}
}

// GetBook returns one listing: from its own cache entry, then the
// snapshot, then MercadoLibre. A remote result is cached for later calls.
func (h *CatalogHandler) GetBook(ctx context.Context, input *BookInput) (*BookOutput, error) {
	item, source := h.findBook(ctx, input.ID)
	if item == nil {
		return nil, huma.Error404NotFound("book not found")
	}

	out := &BookOutput{}
	out.Body.Status = "ok"
	out.Body.Source = source
	out.Body.Item = *item
	return out, nil
}

func (h *CatalogHandler) findBook(ctx context.Context, id string) (*domain.ListingDetail, string) {
	item, err := h.store.GetItem(ctx, id)
	if err == nil {
		return item, SourceCache
	}
	h.logMiss("item", err)

	if snap, err := h.store.GetCatalog(ctx); err == nil {
		if found := snap.Find(id); found != nil {
			return found, SourceSnapshot
		}
	}

	if snap := h.static(); snap != nil {
		if found := snap.Find(id); found != nil {
			return found, SourceStatic
		}
	}

	if h.fetcher == nil {
		return nil, ""
	}
	raw, err := h.fetcher.GetItem(ctx, id)
	if err != nil {
		h.log.Warn("fetching book details", "id", id, "error", err)
		return nil, ""
	}
	detail := meli.ToListingDetail(raw)
	if err := h.store.PutItem(ctx, &detail); err != nil {
		h.log.Warn("caching book details", "id", id, "error", err)
	}
	return &detail, SourceRemote
}

func (h *CatalogHandler) static() *domain.CatalogSnapshot {
	if h.staticPath == "" {
		return nil
	}
	snap, err := h.loadStatic()
	if err != nil {
		return nil
	}
	return snap
}

func (h *CatalogHandler) logMiss(what string, err error) {
	if store.IsNotFound(err) {
		return
	}
	h.log.Warn("reading "+what+" from store", "error", err)
}

// RegisterCatalogRoutes registers the storefront read endpoints.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-catalog",
		Method:      http.MethodGet,
		Path:        "/api/catalog",
		Summary:     "Full catalog snapshot",
		Description: "Returns the last synced snapshot with every listing regardless of status.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetCatalog)

	huma.Register(api, huma.Operation{
		OperationID: "get-home",
		Method:      http.MethodGet,
		Path:        "/api/home",
		Summary:     "Active listings",
		Description: "Returns the active listings shown on the storefront home. Never fails; empty when nothing is cached.",
		Tags:        []string{"catalog"},
	}, h.GetHome)

	huma.Register(api, huma.Operation{
		OperationID: "search-catalog",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Search the catalog",
		Description: "Ranks cached listings by ISBN, title, author and publisher matches.",
		Tags:        []string{"catalog"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "get-book-details",
		Method:      http.MethodGet,
		Path:        "/api/book-details",
		Summary:     "Book details",
		Description: "Returns one listing from the cache, falling back to MercadoLibre.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetBook)
}
