package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/trexxeseba/amadolibros-web/internal/meli"
)

// QuotaHandler provides the MercadoLibre API usage endpoint.
type QuotaHandler struct {
	rl *meli.RateLimiter
}

// NewQuotaHandler creates a new QuotaHandler.
func NewQuotaHandler(rl *meli.RateLimiter) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64     `json:"daily_limit" example:"0"                    doc:"Configured daily API call budget, 0 for unlimited"`
		DailyUsed  int64     `json:"daily_used"  example:"142"                  doc:"API calls made in the current 24-hour window"`
		Remaining  int64     `json:"remaining"   example:"-1"                   doc:"API calls remaining in the current window, -1 for unlimited"`
		ResetAt    time.Time `json:"reset_at"    example:"2026-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
		IntervalMS int64     `json:"interval_ms" example:"100"                  doc:"Minimum spacing between API calls"`
	}
}

// GetQuota returns the current MercadoLibre API usage.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl == nil {
		return resp, nil
	}

	resp.Body.DailyLimit = h.rl.MaxDaily()
	resp.Body.DailyUsed = h.rl.DailyCount()
	resp.Body.Remaining = h.rl.Remaining()
	resp.Body.ResetAt = h.rl.ResetAt()
	resp.Body.IntervalMS = h.rl.Interval().Milliseconds()

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/quota",
		Summary:     "Get MercadoLibre API usage",
		Description: "Returns the daily API call usage, remaining budget, window reset time and request spacing.",
		Tags:        []string{"mercadolibre"},
	}, h.GetQuota)
}
