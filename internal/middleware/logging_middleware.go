package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
)

// RequestLogging logs every request once it has been served.
// Client addresses are personal data and end up in the personal log.
func RequestLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			utils.LogHTTPRequest(
				middleware.GetReqID(r.Context()),
				r.Method,
				r.URL.Path,
				r.RemoteAddr,
				r.UserAgent(),
				statusOf(ww),
				time.Since(start),
			)
		})
	}
}

// statusOf returns the written status, defaulting to 200 for handlers that never wrote a header.
func statusOf(ww middleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
