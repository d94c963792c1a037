package middleware

import (
	"context"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// usableRequestID reports whether a client-supplied ID may be logged as is:
// non-empty, bounded, and printable ASCII only.
func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool { return r < ' ' || r > '~' }) < 0
}

// RequestID stores the request ID under chi's RequestIDKey, so
// chimiddleware.GetReqID finds it, and echoes it in X-Request-Id. Unusable
// or missing client IDs are replaced by a fresh UUIDv4.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(chimiddleware.RequestIDHeader)
			if !usableRequestID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(chimiddleware.RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
