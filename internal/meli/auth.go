package meli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/trexxeseba/amadolibros-web/internal/metrics"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

const (
	defaultTokenURL      = "https://api.mercadolibre.com/oauth/token" //nolint:gosec // not a credential
	defaultSafetyMargin  = 5 * time.Minute
	minSafetyMargin      = time.Minute
	maxSafetyMargin      = 5 * time.Minute
	defaultTokenLifetime = 6 * time.Hour
)

// Credential environment variable names reported by ConfigError.
const (
	EnvAppID        = "MELI_APP_ID"
	EnvClientSecret = "MELI_CLIENT_SECRET"
	EnvRefreshToken = "MELI_REFRESH_TOKEN"
)

// Credentials are the long-lived application credentials.
type Credentials struct {
	AppID        string
	ClientSecret string
	RefreshToken string
}

// Missing returns the environment variable names of every absent field.
func (c Credentials) Missing() []string {
	var missing []string
	if c.AppID == "" {
		missing = append(missing, EnvAppID)
	}
	if c.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}
	if c.RefreshToken == "" {
		missing = append(missing, EnvRefreshToken)
	}
	return missing
}

// CredentialStore persists tokens across process restarts. Get methods
// return an error on a miss.
type CredentialStore interface {
	GetAccessCredential(ctx context.Context) (*domain.AccessCredential, error)
	PutAccessCredential(ctx context.Context, cred *domain.AccessCredential, ttl time.Duration) error
	DeleteAccessCredential(ctx context.Context) error
	GetRefreshToken(ctx context.Context) (string, error)
	PutRefreshToken(ctx context.Context, token string) error
}

// OAuthTokenProvider implements TokenProvider with the refresh_token grant.
// The access credential is cached in memory and, when a CredentialStore is
// set, in the store. A credential is only handed out while it is more than
// the safety margin away from expiry. Refreshes are serialized.
type OAuthTokenProvider struct {
	creds    Credentials
	tokenURL string
	client   *http.Client
	store    CredentialStore
	margin   time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	cred    *domain.AccessCredential
	nowFunc func() time.Time // for testing
}

// OAuthOption configures the OAuthTokenProvider.
type OAuthOption func(*OAuthTokenProvider)

// WithTokenURL overrides the default MercadoLibre token endpoint.
func WithTokenURL(u string) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.tokenURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.nowFunc = f
	}
}

// WithCredentialStore persists credentials in s.
func WithCredentialStore(s CredentialStore) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.store = s
	}
}

// WithSafetyMargin sets how long before expiry a credential stops being
// used. Values are clamped to [1m, 5m].
func WithSafetyMargin(d time.Duration) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.margin = min(max(d, minSafetyMargin), maxSafetyMargin)
	}
}

// WithAuthLogger sets the logger.
func WithAuthLogger(l *slog.Logger) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.log = l
	}
}

// NewOAuthTokenProvider creates a new MercadoLibre token provider.
func NewOAuthTokenProvider(creds Credentials, opts ...OAuthOption) *OAuthTokenProvider {
	p := &OAuthTokenProvider{
		creds:    creds,
		tokenURL: defaultTokenURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		margin:   defaultSafetyMargin,
		log:      slog.Default(),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns a valid access token, refreshing if necessary.
func (p *OAuthTokenProvider) Token(ctx context.Context) (string, error) {
	cred, err := p.Credential(ctx)
	if err != nil {
		return "", err
	}
	return cred.AccessToken, nil
}

// Credential returns the current access credential, refreshing if necessary.
func (p *OAuthTokenProvider) Credential(ctx context.Context) (*domain.AccessCredential, error) {
	if missing := p.creds.Missing(); len(missing) > 0 {
		return nil, &ConfigError{Missing: missing}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.nowFunc()
	if p.cred.ValidAt(now, p.margin) {
		c := *p.cred
		return &c, nil
	}

	if p.store != nil {
		if stored, err := p.store.GetAccessCredential(ctx); err == nil && stored.ValidAt(now, p.margin) {
			p.cred = stored
			c := *stored
			return &c, nil
		}
	}

	return p.refreshLocked(ctx)
}

// Invalidate drops the cached credential so the next call refreshes.
func (p *OAuthTokenProvider) Invalidate(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cred = nil
	if p.store != nil {
		if err := p.store.DeleteAccessCredential(ctx); err != nil {
			p.log.Warn("deleting stored access token", "error", err)
		}
	}
}

func (p *OAuthTokenProvider) refreshLocked(ctx context.Context) (*domain.AccessCredential, error) {
	refresh := p.creds.RefreshToken
	if p.store != nil {
		if rt, err := p.store.GetRefreshToken(ctx); err == nil && rt != "" {
			refresh = rt
		}
	}

	conf := &oauth2.Config{
		ClientID:     p.creds.AppID,
		ClientSecret: p.creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  p.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	tok, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh}).Token()
	if err != nil {
		metrics.MeliTokenRefreshesTotal.WithLabelValues("error").Inc()
		return nil, tokenError(err)
	}
	metrics.MeliTokenRefreshesTotal.WithLabelValues("ok").Inc()

	now := p.nowFunc()
	cred := &domain.AccessCredential{
		AccessToken: tok.AccessToken,
		ExpiresAt:   now.Add(tokenLifetime(tok)),
	}
	p.cred = cred

	if p.store != nil {
		if ttl := cred.ExpiresAt.Sub(now) - p.margin; ttl > 0 {
			if err := p.store.PutAccessCredential(ctx, cred, ttl); err != nil {
				p.log.Warn("persisting access token", "error", err)
			}
		}
		if tok.RefreshToken != "" && tok.RefreshToken != refresh {
			if err := p.store.PutRefreshToken(ctx, tok.RefreshToken); err != nil {
				p.log.Warn("persisting rotated refresh token", "error", err)
			}
		}
	}

	c := *cred
	return &c, nil
}

// tokenError classifies a token exchange failure. Network failures are
// transient; anything the endpoint answered is an auth rejection.
func tokenError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		ae := &AuthError{Code: re.ErrorCode, Description: re.ErrorDescription}
		if re.Response != nil {
			ae.StatusCode = re.Response.StatusCode
		}
		if ae.Code == "" && ae.Description == "" {
			ae.Description = string(re.Body)
		}
		return ae
	}

	var ue *url.Error
	if errors.As(err, &ue) {
		return &TransientError{Err: err}
	}

	return &AuthError{StatusCode: http.StatusOK, Description: err.Error()}
}

// tokenLifetime reads expires_in from the raw response, falling back to
// the parsed expiry and then to the documented six hours.
func tokenLifetime(tok *oauth2.Token) time.Duration {
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		if v > 0 {
			return time.Duration(v) * time.Second
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	if !tok.Expiry.IsZero() {
		if d := time.Until(tok.Expiry); d > 0 {
			return d
		}
	}
	return defaultTokenLifetime
}
