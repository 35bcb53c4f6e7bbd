package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/trexxeseba/amadolibros-web/internal/store"
)

// HealthInfo describes the static configuration reported by /api/health.
type HealthInfo struct {
	Backend            string
	MissingCredentials []string
	SellerConfigured   bool
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store store.Store
	info  HealthInfo
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store, info HealthInfo) *HealthHandler {
	return &HealthHandler{store: s, info: info}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 if the store is reachable, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			map[string]string{"status": "unavailable"},
		)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}

// HealthInput selects the optional store round-trip check.
type HealthInput struct {
	KV bool `query:"kv" doc:"Also write, read back and delete a probe key"`
}

// HealthOutput is the response body for the health endpoint.
type HealthOutput struct {
	Status int
	Body   struct {
		Status                string   `json:"status"                 example:"ok"     doc:"ok, or degraded when the store check failed"`
		Store                 string   `json:"store"                  example:"redis"  doc:"Configured store backend"`
		KV                    string   `json:"kv,omitempty"           example:"ok"     doc:"Result of the store round-trip, when requested"`
		CredentialsConfigured bool     `json:"credentials_configured" example:"true"   doc:"Whether every MercadoLibre credential is set"`
		Missing               []string `json:"missing,omitempty"                       doc:"Missing credential variables"`
		SellerConfigured      bool     `json:"seller_configured"      example:"true"   doc:"Whether the seller id is configured"`
	}
}

// GetHealth reports configuration presence and, on request, store health.
func (h *HealthHandler) GetHealth(ctx context.Context, input *HealthInput) (*HealthOutput, error) {
	resp := &HealthOutput{Status: http.StatusOK}
	resp.Body.Status = "ok"
	resp.Body.Store = h.info.Backend
	resp.Body.CredentialsConfigured = len(h.info.MissingCredentials) == 0
	resp.Body.Missing = h.info.MissingCredentials
	resp.Body.SellerConfigured = h.info.SellerConfigured

	if input.KV {
		if err := h.store.RoundTrip(ctx); err != nil {
			resp.Status = http.StatusServiceUnavailable
			resp.Body.Status = "degraded"
			resp.Body.KV = "error: " + err.Error()
			return resp, nil
		}
		resp.Body.KV = "ok"
	}

	return resp, nil
}

// RegisterHealthRoutes registers the health endpoint with the Huma API.
func RegisterHealthRoutes(api huma.API, h *HealthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Service health",
		Description: "Reports configuration presence and, with kv=true, a store write/read/delete round-trip.",
		Tags:        []string{"health"},
	}, h.GetHealth)
}
