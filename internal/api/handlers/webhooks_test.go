package handlers_test

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trexxeseba/amadolibros-web/internal/api/handlers"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// fakeQueue implements WebhookQueue for testing.
type fakeQueue struct {
	mu       sync.Mutex
	sellerID int64
	full     bool
	queued   []domain.WebhookNotification
}

func (q *fakeQueue) Accepts(_ context.Context, n *domain.WebhookNotification) bool {
	return q.sellerID == 0 || n.UserID == q.sellerID
}

func (q *fakeQueue) Enqueue(n domain.WebhookNotification) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.full {
		return false
	}
	q.queued = append(q.queued, n)
	return true
}

func TestReceiveWebhook(t *testing.T) {
	t.Parallel()

	const payload = `{"_id":"abc123","resource":"/items/MLU1","user_id":123,"topic":"items","application_id":42,"attempts":1}`

	tests := []struct {
		name       string
		path       string
		body       string
		queue      *fakeQueue
		wantStatus int
		wantBody   string
		wantQueued int
	}{
		{
			name:       "received",
			path:       "/api/webhooks/mercadolibre",
			body:       payload,
			queue:      &fakeQueue{sellerID: 123},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"received"`,
			wantQueued: 1,
		},
		{
			name:       "other seller ignored",
			path:       "/api/webhooks/mercadolibre",
			body:       payload,
			queue:      &fakeQueue{sellerID: 999},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ignored"`,
		},
		{
			name:       "full queue drops",
			path:       "/api/webhooks/mercadolibre",
			body:       payload,
			queue:      &fakeQueue{full: true},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"dropped"`,
		},
		{
			name:       "invalid json",
			path:       "/api/webhooks/mercadolibre",
			body:       `{"topic":`,
			queue:      &fakeQueue{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"status":"INVALID"`,
		},
		{
			name:       "unknown provider",
			path:       "/api/webhooks/shopify",
			body:       payload,
			queue:      &fakeQueue{},
			wantStatus: http.StatusNotFound,
			wantBody:   "unknown webhook provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterWebhookRoutes(api, handlers.NewWebhookHandler(tt.queue, slog.Default()))

			resp := api.Post(tt.path, "Content-Type: application/json", strings.NewReader(tt.body))
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)

			require.Len(t, tt.queue.queued, tt.wantQueued)
			if tt.wantQueued > 0 {
				n := tt.queue.queued[0]
				assert.Equal(t, "abc123", n.ID)
				assert.Equal(t, domain.TopicItems, n.Topic)
				assert.Equal(t, "/items/MLU1", n.Resource)
				assert.Equal(t, int64(123), n.UserID)
			}
		})
	}
}
