package logging

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Middleware attaches a request-scoped logger, carrying the request ID and
// any W3C trace fields, to the request context, and logs one
// "request completed" entry when the handler returns. It must run after
// the request ID middleware.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			l := requestLogger(Logger(), r.Header.Get(traceparentHeader), chimiddleware.GetReqID(r.Context()))
			rec := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(rec, r.WithContext(withLogger(r.Context(), l)))

			l.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.Status()),
				zap.Int("bytes", rec.BytesWritten()),
				zap.Duration("duration", time.Since(began)),
			)
		})
	}
}
