package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Tracing starts a server span per request through the global tracer
// provider, continuing any incoming trace context. Probe and scrape paths
// are not traced.
func Tracing(service string) echo.MiddlewareFunc {
	return echo.WrapMiddleware(otelhttp.NewMiddleware(service,
		otelhttp.WithFilter(func(r *http.Request) bool {
			_, skip := untracedPaths[r.URL.Path]
			return !skip
		}),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "HTTP " + r.Method
		}),
	))
}

var untracedPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}
