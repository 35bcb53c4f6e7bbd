package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// ProviderMercadoLibre is the only webhook provider served.
const ProviderMercadoLibre = "mercadolibre"

// WebhookQueue accepts notifications for asynchronous processing.
type WebhookQueue interface {
	Accepts(ctx context.Context, n *domain.WebhookNotification) bool
	Enqueue(n domain.WebhookNotification) bool
}

// WebhookHandler receives MercadoLibre change notifications. It answers
// immediately; the work happens on the queue's worker.
type WebhookHandler struct {
	queue WebhookQueue
	log   *slog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(q WebhookQueue, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{queue: q, log: log}
}

// WebhookInput is a raw notification post.
type WebhookInput struct {
	Provider string `path:"provider" doc:"Notification provider" example:"mercadolibre"`
	RawBody  []byte `contentType:"application/json"`
}

// WebhookOutput acknowledges a notification.
type WebhookOutput struct {
	Body struct {
		Status string `json:"status"       example:"received" doc:"received, ignored or dropped"`
		ID     string `json:"id,omitempty" example:"5f3c1a"   doc:"Notification id"`
	}
}

// Receive validates and enqueues a notification. Notifications for other
// sellers are acknowledged and ignored.
func (h *WebhookHandler) Receive(ctx context.Context, input *WebhookInput) (*WebhookOutput, error) {
	if input.Provider != ProviderMercadoLibre {
		return nil, huma.Error404NotFound("unknown webhook provider " + input.Provider)
	}

	var n domain.WebhookNotification
	if err := json.Unmarshal(input.RawBody, &n); err != nil {
		return nil, huma.Error400BadRequest("invalid notification payload", err)
	}

	out := &WebhookOutput{}
	out.Body.ID = n.ID

	if !h.queue.Accepts(ctx, &n) {
		h.log.Info("webhook ignored", "topic", n.Topic, "user_id", n.UserID, "resource", n.Resource)
		out.Body.Status = "ignored"
		return out, nil
	}

	out.Body.Status = "received"
	if !h.queue.Enqueue(n) {
		out.Body.Status = "dropped"
	}
	return out, nil
}

// RegisterWebhookRoutes registers the webhook receiver.
func RegisterWebhookRoutes(api huma.API, h *WebhookHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "receive-webhook",
		Method:      http.MethodPost,
		Path:        "/api/webhooks/{provider}",
		Summary:     "Receive a change notification",
		Description: "Acknowledges a MercadoLibre notification and refreshes the affected resource in the background.",
		Tags:        []string{"webhooks"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.Receive)
}
