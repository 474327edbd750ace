package log

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// SetRequestIDToContext attaches a request ID so every log line for the
// request carries it.
func SetRequestIDToContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID set by the middleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
