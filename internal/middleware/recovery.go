package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
)

// maxStackSize bounds the stack trace written to the log.
const maxStackSize = 8 << 10

// Recovery is a middleware that recovers from panics and returns a 500 Internal Server Error
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					utils.LogPanic("Panic recovered in request handler", err, sanitizeStackTrace(debug.Stack()), map[string]interface{}{
						constants.RequestIDContextKey: middleware.GetReqID(r.Context()),
						"method":                      r.Method,
						"path":                        r.URL.Path,
						"remote_addr":                 r.RemoteAddr,
					})

					utils.Error(
						w,
						http.StatusInternalServerError,
						constants.CodeInternalError,
						constants.MsgInternalServerError,
						nil,
					)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// sanitizeStackTrace truncates a stack trace to a loggable size.
func sanitizeStackTrace(stack []byte) string {
	if len(stack) > maxStackSize {
		return string(stack[:maxStackSize]) + "\n...truncated"
	}
	return string(stack)
}

// LogAndContinueOnError logs an error but allows execution to continue
// This is useful for non-critical errors that should be logged but not cause a panic
func LogAndContinueOnError(err error, message string) {
	if err != nil {
		utils.LogError(err, message, nil)
	}
}
