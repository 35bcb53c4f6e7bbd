// Package main implements a mock MercadoLibre API server for local
// development. It serves a generated book catalog through the OAuth token,
// seller search, multi-get, item and order endpoints so a sync can run
// without real credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	maxSearchLimit = 100
	maxOffset      = 1000
	maxMultiGet    = 20
	scrollPrefix   = "scroll-"
)

type searchAPIResponse struct {
	SellerID string   `json:"seller_id"`
	Results  []string `json:"results"`
	Paging   paging   `json:"paging"`
	ScrollID string   `json:"scroll_id,omitempty"`
}

type paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type multiGetEntry struct {
	Code int `json:"code"`
	Body any `json:"body"`
}

// catalog is the fixed set of listings served by the mock.
type catalog struct {
	sellerID string
	ids      []string
	items    map[string]json.RawMessage
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "", "JSON array of items to serve (generated when empty)")
	size := flag.Int("items", 137, "number of generated listings")
	seller := flag.String("seller", "123456789", "seller id owning the listings")
	throttle := flag.Int("throttle-every", 0, "answer every Nth API request with 429 (0 disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var (
		cat *catalog
		err error
	)
	if *fixtureFile != "" {
		cat, err = loadFixture(*fixtureFile, *seller)
	} else {
		cat, err = generateCatalog(*size, *seller)
	}
	if err != nil {
		logger.Error("failed to build catalog", "fixture", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("catalog ready", "items", len(cat.ids), "seller", cat.sellerID)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock MercadoLibre server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, cat, *throttle)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, cat *catalog, throttleEvery int) *http.ServeMux {
	api := func(h http.HandlerFunc) http.Handler {
		return requireBearer(throttled(throttleEvery, h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", tokenHandler(logger, cat.sellerID))
	mux.Handle("GET /users/me", api(meHandler(cat)))
	mux.Handle("GET /users/{seller}/items/search", api(searchHandler(logger, cat)))
	mux.Handle("GET /items", api(multiGetHandler(cat)))
	mux.Handle("GET /items/{id}", api(itemHandler(cat)))
	mux.Handle("GET /orders/{id}", api(orderHandler(cat)))
	return mux
}

func loadFixture(path, sellerID string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	cat := &catalog{sellerID: sellerID, items: make(map[string]json.RawMessage, len(raw))}
	for i, r := range raw {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(r, &head); err != nil || head.ID == "" {
			return nil, fmt.Errorf("fixture item %d has no id", i)
		}
		cat.ids = append(cat.ids, head.ID)
		cat.items[head.ID] = r
	}
	return cat, nil
}

var (
	sampleTitles  = []string{"Ficciones", "Rayuela", "El Aleph", "Pedro Páramo", "La tregua", "Cien años de soledad"}
	sampleAuthors = []string{"Jorge Luis Borges", "Julio Cortázar", "Jorge Luis Borges", "Juan Rulfo", "Mario Benedetti", "Gabriel García Márquez"}
	samplePubs    = []string{"Debolsillo", "Alfaguara", "Emecé", "Cátedra", "Planeta", "Sudamericana"}
)

// generateCatalog builds n listings. Every seventh listing is paused and
// every thirteenth is closed.
func generateCatalog(n int, sellerID string) (*catalog, error) {
	cat := &catalog{sellerID: sellerID, items: make(map[string]json.RawMessage, n)}
	for i := range n {
		id := fmt.Sprintf("MLU%09d", 600000000+i)
		k := i % len(sampleTitles)

		status := "active"
		switch {
		case i%13 == 12:
			status = "closed"
		case i%7 == 6:
			status = "paused"
		}

		item := map[string]any{
			"id":                 id,
			"title":              fmt.Sprintf("%s (ejemplar %d)", sampleTitles[k], i+1),
			"price":              390 + 10*(i%50),
			"currency_id":        "UYU",
			"status":             status,
			"condition":          "used",
			"available_quantity": 1 + i%3,
			"thumbnail":          "http://http2.mlstatic.com/D_" + id + "-I.jpg",
			"secure_thumbnail":   "https://http2.mlstatic.com/D_" + id + "-I.jpg",
			"pictures": []map[string]string{{
				"id":         id + "-P",
				"secure_url": "https://http2.mlstatic.com/D_" + id + "-O.jpg",
			}},
			"permalink": "https://articulo.mercadolibre.com.uy/" + strings.Replace(id, "MLU", "MLU-", 1),
			"shipping": map[string]any{
				"mode":          "me2",
				"free_shipping": i%5 == 0,
				"local_pick_up": true,
			},
			"attributes": []map[string]string{
				{"id": "AUTHOR", "name": "Autor", "value_name": sampleAuthors[k]},
				{"id": "BOOK_PUBLISHER", "name": "Editorial", "value_name": samplePubs[k]},
				{"id": "GTIN", "name": "ISBN", "value_name": fmt.Sprintf("97884%08d", i)},
			},
		}

		raw, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		cat.ids = append(cat.ids, id)
		cat.items[id] = raw
	}
	return cat, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func apiError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"message": message,
		"error":   code,
		"status":  status,
		"cause":   []string{},
	})
}

func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || !strings.HasPrefix(token, "APP_USR-") {
			apiError(w, http.StatusUnauthorized, "unauthorized", "invalid access token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func throttled(every int, next http.Handler) http.Handler {
	if every <= 0 {
		return next
	}
	var n atomic.Int64
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if n.Add(1)%int64(every) == 0 {
			apiError(w, http.StatusTooManyRequests, "too_many_requests", "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tokenHandler(logger *slog.Logger, sellerID string) http.HandlerFunc {
	var issued atomic.Int64

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			apiError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
			return
		}
		if r.PostForm.Get("grant_type") != "refresh_token" {
			apiError(w, http.StatusBadRequest, "unsupported_grant_type", "grant_type must be refresh_token")
			return
		}
		if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
			apiError(w, http.StatusUnauthorized, "invalid_client", "client authentication failed")
			return
		}
		if !strings.HasPrefix(r.PostForm.Get("refresh_token"), "TG-") {
			apiError(w, http.StatusBadRequest, "invalid_grant", "invalid refresh_token")
			return
		}

		n := issued.Add(1)
		uid, _ := strconv.ParseInt(sellerID, 10, 64)
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  fmt.Sprintf("APP_USR-mock-%d-%x", n, os.Getpid()),
			"token_type":    "Bearer",
			"expires_in":    21600,
			"scope":         "offline_access read write",
			"user_id":       uid,
			"refresh_token": fmt.Sprintf("TG-mock-%d", n),
		})
		logger.Info("issued mock token", "count", n)
	}
}

func meHandler(cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		id, _ := strconv.ParseInt(cat.sellerID, 10, 64)
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "nickname": "AMADOLIBROS"})
	}
}

func queryInt(r *http.Request, name string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && v >= 0 {
		return v
	}
	return def
}

func searchHandler(logger *slog.Logger, cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("seller") != cat.sellerID {
			apiError(w, http.StatusForbidden, "forbidden", "caller is not the owner of the listings")
			return
		}

		limit := min(queryInt(r, "limit", 50), maxSearchLimit)
		if limit == 0 {
			limit = 50
		}

		q := r.URL.Query()
		scan := q.Get("search_type") == "scan"

		var offset int
		switch {
		case scan:
			if s, ok := strings.CutPrefix(q.Get("scroll_id"), scrollPrefix); ok {
				offset, _ = strconv.Atoi(s)
			}
		default:
			offset = queryInt(r, "offset", 0)
			if offset+limit > maxOffset {
				apiError(w, http.StatusBadRequest, "bad_request",
					fmt.Sprintf("offset + limit must not exceed %d, use search_type=scan", maxOffset))
				return
			}
		}

		ids := cat.filter(q.Get("status"))
		total := len(ids)
		page := []string{}
		if offset < total {
			page = ids[offset:min(offset+limit, total)]
		}

		resp := searchAPIResponse{
			SellerID: cat.sellerID,
			Results:  page,
			Paging:   paging{Total: total, Offset: offset, Limit: limit},
		}
		if scan && len(page) > 0 {
			resp.ScrollID = scrollPrefix + strconv.Itoa(offset+len(page))
		}

		writeJSON(w, http.StatusOK, resp)
		logger.Info("search", "scan", scan, "total", total, "returned", len(page), "offset", offset, "limit", limit)
	}
}

// filter returns the ids whose status matches, or every id when status is
// empty.
func (c *catalog) filter(status string) []string {
	if status == "" {
		return c.ids
	}
	var out []string
	for _, id := range c.ids {
		var head struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(c.items[id], &head); err == nil && head.Status == status {
			out = append(out, id)
		}
	}
	return out
}

func multiGetHandler(cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("ids")
		if raw == "" {
			apiError(w, http.StatusBadRequest, "bad_request", "ids is required")
			return
		}
		ids := strings.Split(raw, ",")
		if len(ids) > maxMultiGet {
			apiError(w, http.StatusBadRequest, "bad_request",
				fmt.Sprintf("multi-get accepts at most %d ids", maxMultiGet))
			return
		}

		out := make([]multiGetEntry, 0, len(ids))
		for _, id := range ids {
			item, ok := cat.items[id]
			if !ok {
				out = append(out, multiGetEntry{
					Code: http.StatusNotFound,
					Body: map[string]any{"message": "Item with id " + id + " not found", "error": "not_found"},
				})
				continue
			}
			out = append(out, multiGetEntry{Code: http.StatusOK, Body: item})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func itemHandler(cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, ok := cat.items[r.PathValue("id")]
		if !ok {
			apiError(w, http.StatusNotFound, "not_found", "item not found")
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

// orderHandler answers any numeric order id with a paid order for the
// first listing of the catalog.
func orderHandler(cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || len(cat.ids) == 0 {
			apiError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":           id,
			"status":       "paid",
			"total_amount": 690,
			"currency_id":  "UYU",
			"date_created": "2026-06-15T10:04:05.000-03:00",
			"buyer":        map[string]any{"id": 998877},
			"order_items": []map[string]any{
				{"item": map[string]string{"id": cat.ids[0]}, "quantity": 1},
			},
		})
	}
}
