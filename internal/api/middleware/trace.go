// Package middleware holds HTTP middleware beyond what chi ships.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/palavradiaria/palavra-api/internal/api/shared"
)

// TraceHeader is the response header carrying the request's trace ID.
const TraceHeader = "X-Trace-ID"

// Trace assigns each request a trace ID, honoring one supplied by the
// client, and exposes it via context and response header.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := shared.WithTraceID(r.Context(), traceID)
		w.Header().Set(TraceHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
