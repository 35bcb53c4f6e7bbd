package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// probePaths are polled by orchestrators every few seconds. Only their
// first success and every failure are logged.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Responses with a 5xx status, or a
// failed probe, are logged at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu         sync.Mutex
		probesSeen = make(map[string]bool)
	)

	// quiet reports whether a successful probe was already logged once.
	quiet := func(path string) bool {
		mu.Lock()
		defer mu.Unlock()
		if probesSeen[path] {
			return true
		}
		probesSeen[path] = true
		return false
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			_, probe := probePaths[path]
			failed := status >= http.StatusInternalServerError ||
				(probe && status >= http.StatusBadRequest)

			if probe && !failed && quiet(path) {
				return err
			}

			level := slog.LevelInfo
			if failed {
				level = slog.LevelWarn
			}

			log.Log(context.Background(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}
