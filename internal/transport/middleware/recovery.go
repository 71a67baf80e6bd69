package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// RecoveredMessage is the error body sent after a handler panics.
const RecoveredMessage = "Something broke!"

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and responds with 500. The panic value is echoed in
// "details" only when showDetails is set.
func Recovery(logger *slog.Logger, showDetails bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := debug.Stack()
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(stack)),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					body := errorBody{Error: RecoveredMessage}
					if showDetails {
						body.Details = fmt.Sprint(err)
					}
					writeError(w, http.StatusInternalServerError, body)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
