// Package shared provides helpers used by every HTTP handler: JSON
// responses, request decoding with validation, and trace-ID plumbing.
package shared

import "context"

type contextKey string

// traceIDKey is the context key under which the per-request trace ID lives.
const traceIDKey contextKey = "trace_id"

// WithTraceID returns a context carrying the trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceID extracts the trace ID from the context, or "" when absent.
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}
