package meli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ConfigError reports that required MercadoLibre credentials are missing.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "missing MercadoLibre configuration: " + strings.Join(e.Missing, ", ")
}

// AuthError is a rejection by the token endpoint or a 401/403 from the API.
// It is fatal for a sync run.
type AuthError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *AuthError) Error() string {
	msg := fmt.Sprintf("MercadoLibre auth error (status %d)", e.StatusCode)
	if e.Code != "" {
		msg += ": " + e.Code
	}
	if e.Description != "" {
		msg += " - " + e.Description
	}
	return msg
}

// TransientError is a failed request that only affects the page or batch
// it belongs to.
type TransientError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("MercadoLibre request failed: %v", e.Err)
	}
	return fmt.Sprintf("MercadoLibre API error (status %d): %s", e.StatusCode, e.Body)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// RateLimitError is returned once 429 retries are exhausted.
type RateLimitError struct {
	Attempts int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("MercadoLibre rate limit: gave up after %d attempts", e.Attempts)
}

// IsAuthError reports whether err carries an *AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsConfigError reports whether err carries a *ConfigError and returns it.
func IsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// DeadlineReached reports whether err, or the state of ctx, shows that the
// context deadline has passed or is too close for the next call.
func DeadlineReached(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}
