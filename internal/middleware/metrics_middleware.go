package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/metrics"
)

// unmatchedRoute labels requests that matched no route pattern.
const unmatchedRoute = "unmatched"

// Metrics records Prometheus metrics for HTTP requests.
// Requests are labelled with their route pattern, never the raw path.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			metrics.RecordHTTPRequest(r.Method, route, statusOf(ww), time.Since(start))
		})
	}
}
