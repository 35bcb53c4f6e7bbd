package meli

import (
	"context"
	"net/http"
	"time"

	"github.com/trexxeseba/amadolibros-web/internal/metrics"
)

// RetryPolicy bounds the exponential backoff applied to 429 responses.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryPolicy starts at one second, doubles per attempt and gives
// up after five attempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    5,
		InitialBackoff: time.Second,
		MaxBackoff:     16 * time.Second,
	}
}

func (c *APIClient) doWithRetry(ctx context.Context, u string) ([]byte, error) {
	attempts := max(c.retry.MaxAttempts, 1)
	backoff := c.retry.InitialBackoff

	for attempt := 1; ; attempt++ {
		body, status, err := c.doOnce(ctx, u)
		if err != nil {
			return nil, err
		}
		if status != http.StatusTooManyRequests {
			return body, nil
		}

		metrics.MeliRateLimitedTotal.Inc()
		if attempt >= attempts {
			return nil, &RateLimitError{Attempts: attempt}
		}

		c.log.Warn("rate limited, backing off",
			"attempt", attempt,
			"backoff", backoff,
		)
		if err := sleep(ctx, backoff); err != nil {
			return nil, err
		}

		backoff *= 2
		if c.retry.MaxBackoff > 0 && backoff > c.retry.MaxBackoff {
			backoff = c.retry.MaxBackoff
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
