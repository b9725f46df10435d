package middleware

import (
	"net/http"
	"runtime/debug"

	"notes-server/pkg/response"

	"go.uber.org/zap"
)

// Recovery turns a panic into an opaque 500. The full detail stays in the
// server log only.
func Recovery(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("panic", rec),
						zap.ByteString("stack", debug.Stack()),
					)
					response.InternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
