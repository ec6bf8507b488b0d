package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "requestID"

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to the context and echoes it in the
// response. An incoming X-Request-ID is kept when it parses as a UUID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDKey, rid)
		w.Header().Set(requestIDHeader, rid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext extracts the request ID set by RequestID.
func RequestIDFromContext(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey).(string)
	return rid
}
