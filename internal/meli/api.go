package meli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/trexxeseba/amadolibros-web/internal/metrics"
)

const (
	defaultBaseURL = "https://api.mercadolibre.com"

	// MaxMultiGet is the largest id batch the multi-get endpoint accepts.
	MaxMultiGet = 20

	itemAttributes = "id,title,price,currency_id,status,condition,available_quantity," +
		"thumbnail,secure_thumbnail,pictures,permalink,shipping,attributes"
)

// APIClient implements ListingClient against the MercadoLibre REST API.
type APIClient struct {
	tokens      TokenProvider
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
	retry       RetryPolicy
	log         *slog.Logger
}

// APIOption configures the APIClient.
type APIOption func(*APIClient)

// WithBaseURL overrides the default API root.
func WithBaseURL(u string) APIOption {
	return func(c *APIClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAPIHTTPClient overrides the default HTTP client.
func WithAPIHTTPClient(hc *http.Client) APIOption {
	return func(c *APIClient) {
		c.client = hc
	}
}

// WithRateLimiter injects the limiter that spaces every request. When set,
// every call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) APIOption {
	return func(c *APIClient) {
		c.rateLimiter = r
	}
}

// WithRetryPolicy overrides the 429 backoff policy.
func WithRetryPolicy(p RetryPolicy) APIOption {
	return func(c *APIClient) {
		c.retry = p
	}
}

// WithAPILogger sets the logger.
func WithAPILogger(l *slog.Logger) APIOption {
	return func(c *APIClient) {
		c.log = l
	}
}

// NewAPIClient creates a new MercadoLibre API client.
func NewAPIClient(tokens TokenProvider, opts ...APIOption) *APIClient {
	c := &APIClient{
		tokens:  tokens,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		retry:   DefaultRetryPolicy(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchItemIDs fetches one page of the seller's listing ids.
func (c *APIClient) SearchItemIDs(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if req.SellerID == "" {
		return nil, errors.New("seller id is required")
	}

	params := url.Values{}
	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	params.Set("limit", strconv.Itoa(limit))
	if req.Status != "" {
		params.Set("status", req.Status)
	}
	if req.Scan {
		params.Set("search_type", "scan")
		if req.ScrollID != "" {
			params.Set("scroll_id", req.ScrollID)
		}
	} else {
		params.Set("offset", strconv.Itoa(req.Offset))
	}

	var apiResp searchAPIResponse
	path := "/users/" + url.PathEscape(req.SellerID) + "/items/search"
	if err := c.getJSON(ctx, path, params, &apiResp); err != nil {
		return nil, err
	}

	return &SearchResponse{
		IDs:      apiResp.Results,
		Total:    apiResp.Paging.Total,
		Offset:   apiResp.Paging.Offset,
		Limit:    apiResp.Paging.Limit,
		ScrollID: apiResp.ScrollID,
	}, nil
}

// GetItems fetches up to MaxMultiGet listings in one request.
func (c *APIClient) GetItems(ctx context.Context, ids []string) ([]MultiGetResult, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxMultiGet {
		return nil, fmt.Errorf("multi-get accepts at most %d ids, got %d", MaxMultiGet, len(ids))
	}

	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("attributes", itemAttributes)

	var results []MultiGetResult
	if err := c.getJSON(ctx, "/items", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetItem fetches a single listing.
func (c *APIClient) GetItem(ctx context.Context, id string) (*Item, error) {
	path := "/items/" + url.PathEscape(id)
	body, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	item, err := DecodeItem(body)
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("parsing response from %s: %w", path, err)}
	}
	return item, nil
}

// GetOrder fetches a single order.
func (c *APIClient) GetOrder(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := c.getJSON(ctx, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetMe returns the account the access token belongs to.
func (c *APIClient) GetMe(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *APIClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return c.doWithRetry(ctx, u)
}

func (c *APIClient) getJSON(ctx context.Context, path string, params url.Values, dst any) error {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return &TransientError{Err: fmt.Errorf("parsing response from %s: %w", path, err)}
	}
	return nil
}

// doOnce performs a single GET. A 429 is reported through the status code
// with a nil error so the caller can back off.
func (c *APIClient) doOnce(ctx context.Context, u string) ([]byte, int, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.MeliDailyLimitHits.Inc()
			}
			return nil, 0, fmt.Errorf("rate limit: %w", err)
		}
		metrics.MeliDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}
	metrics.MeliAPICallsTotal.Inc()

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("getting auth token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, &TransientError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &TransientError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return body, resp.StatusCode, nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, resp.StatusCode, apiAuthError(resp.StatusCode, body)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, resp.StatusCode, &TransientError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, resp.StatusCode, nil
}

func apiAuthError(status int, body []byte) *AuthError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload) //nolint:errcheck // best-effort error parsing
	return &AuthError{StatusCode: status, Code: payload.Error, Description: payload.Message}
}
