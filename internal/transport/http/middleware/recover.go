package middleware

import (
	"log/slog"
	"net/http"

	"evalx/internal/transport/http/api"
)

// Recoverer converts a handler panic into a 500 failure envelope. The panic
// value goes to the log only; clients get a generic message.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered", "path", r.URL.Path, "requestId", GetRequestID(r.Context()), "panic", rec)
				api.Fail(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
