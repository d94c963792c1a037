package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CORS returns a middleware allowing any origin to read the API. Only safe
// methods are listed because the service exposes no write operations.
//
// Preflight requests get their CORS headers here but are passed on to the
// router, so the status is still the router's: 405 on "/", 404 elsewhere.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:     []string{"Accept", "Content-Type", chimiddleware.RequestIDHeader, "traceparent"},
		ExposedHeaders:     []string{chimiddleware.RequestIDHeader},
		MaxAge:             300,
		OptionsPassthrough: true,
	})
}
