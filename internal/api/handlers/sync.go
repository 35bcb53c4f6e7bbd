package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/trexxeseba/amadolibros-web/internal/engine"
	"github.com/trexxeseba/amadolibros-web/internal/store"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// CatalogSyncer defines the interface for triggering a catalog sync.
type CatalogSyncer interface {
	RunSync(ctx context.Context, opts engine.RunOptions) (*domain.SyncReport, error)
	Running() bool
}

// SyncHandler handles manual sync triggers and the last-report endpoint.
type SyncHandler struct {
	syncer     CatalogSyncer
	store      store.Store
	adminToken string
}

// NewSyncHandler creates a new SyncHandler. An empty admin token leaves the
// trigger open.
func NewSyncHandler(syncer CatalogSyncer, s store.Store, adminToken string) *SyncHandler {
	return &SyncHandler{syncer: syncer, store: s, adminToken: adminToken}
}

// SyncInput carries the admin credentials and run options.
type SyncInput struct {
	Authorization string `header:"Authorization" doc:"Bearer admin token"`
	AdminToken    string `header:"X-Admin-Token" doc:"Admin token, alternative to the Authorization header"`
	Force         bool   `query:"force"          doc:"Skip the cooldown guard"`
	Items         bool   `query:"items"          doc:"Include every synced listing in the report"`
}

// SyncOutput is the sync report. ERROR reports are answered with 500.
type SyncOutput struct {
	Status int
	Body   *domain.SyncReport
}

// Sync runs a catalog sync and returns its report. The run is detached from
// the request context so a client disconnect does not abort it.
func (h *SyncHandler) Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error) {
	if !h.authorized(input) {
		return nil, huma.Error401Unauthorized("invalid or missing admin token")
	}

	report, err := h.syncer.RunSync(context.WithoutCancel(ctx), engine.RunOptions{
		Force:        input.Force,
		IncludeItems: input.Items,
	})

	var cooldown *engine.CooldownError
	switch {
	case errors.As(err, &cooldown):
		retry := int(math.Ceil(cooldown.RetryAfter.Seconds()))
		apiErr := &APIError{
			status:     http.StatusTooManyRequests,
			Status:     envelopeStatus(http.StatusTooManyRequests),
			Message:    err.Error(),
			RetryAfter: retry,
		}
		return nil, huma.ErrorWithHeaders(apiErr, http.Header{
			"Retry-After": {strconv.Itoa(retry)},
		})
	case errors.Is(err, engine.ErrSyncInProgress):
		return nil, huma.Error409Conflict(err.Error())
	case err != nil:
		return nil, huma.Error500InternalServerError("sync failed", err)
	}

	out := &SyncOutput{Status: http.StatusOK, Body: report}
	if report.Status == domain.SyncError {
		out.Status = http.StatusInternalServerError
	}
	return out, nil
}

func (h *SyncHandler) authorized(input *SyncInput) bool {
	if h.adminToken == "" {
		return true
	}

	token := input.AdminToken
	if bearer, ok := strings.CutPrefix(input.Authorization, "Bearer "); ok {
		token = strings.TrimSpace(bearer)
	}
	if token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) == 1
}

// SyncStatusOutput is the last persisted sync report.
type SyncStatusOutput struct {
	Body struct {
		Running bool               `json:"running" doc:"Whether a sync is running in this process"`
		Report  *domain.SyncReport `json:"report"  doc:"Report of the most recent sync"`
	}
}

// Status returns the report of the most recent sync.
func (h *SyncHandler) Status(ctx context.Context, _ *struct{}) (*SyncStatusOutput, error) {
	report, err := h.store.GetLastReport(ctx)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, huma.Error404NotFound("no sync has run yet")
		}
		return nil, huma.Error503ServiceUnavailable("reading last sync report", err)
	}

	out := &SyncStatusOutput{}
	out.Body.Running = h.syncer.Running()
	out.Body.Report = report
	return out, nil
}

// RegisterSyncRoutes registers the sync trigger and status endpoints. The
// trigger answers on both paths and both methods used by the storefront
// tooling.
func RegisterSyncRoutes(api huma.API, h *SyncHandler) {
	for _, path := range []string{"/api/sync-catalog", "/api/sync-all-books"} {
		name := strings.TrimPrefix(path, "/api/")
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			huma.Register(api, huma.Operation{
				OperationID: strings.ToLower(method) + "-" + name,
				Method:      method,
				Path:        path,
				Summary:     "Trigger a catalog sync",
				Description: "Enumerates every listing of the seller, enriches them and replaces the cached " +
					"catalog snapshot. Requires the admin token when one is configured.",
				Tags: []string{"sync"},
				Errors: []int{
					http.StatusUnauthorized,
					http.StatusConflict,
					http.StatusTooManyRequests,
					http.StatusInternalServerError,
				},
			}, h.Sync)
		}
	}

	huma.Register(api, huma.Operation{
		OperationID: "get-sync-status",
		Method:      http.MethodGet,
		Path:        "/api/sync-status",
		Summary:     "Last sync report",
		Description: "Returns the persisted report of the most recent sync run.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusNotFound},
	}, h.Status)
}
