package ctxutil

import (
	"context"
)

type ctxKey string

const (
	clientAddrKey ctxKey = "client_addr"
	requestIDKey  ctxKey = "request_id"
)

// WithClientAddr stores the caller's network address (host only) in the context.
func WithClientAddr(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, clientAddrKey, addr)
}

// ClientAddrFromCtx extracts the caller's address from the context.
// Returns an empty string and false if the value is missing or empty.
func ClientAddrFromCtx(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(clientAddrKey).(string)
	if !ok || addr == "" {
		return "", false
	}
	return addr, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
