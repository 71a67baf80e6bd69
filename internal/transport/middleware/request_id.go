package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/textscanner/pkg/ctxutil"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that reuses an incoming request ID or mints a
// new UUID, and stores it together with the caller's host in the context.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			ctx = ctxutil.WithClientAddr(ctx, hostOf(r.RemoteAddr))
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
