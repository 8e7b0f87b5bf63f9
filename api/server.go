// ABOUTME: HTTP router construction and middleware wiring
// ABOUTME: Plain net/http mux with CORS, request logging and rate limiting

package api

import (
	"net/http"

	"github.com/rs/cors"

	"clipper-app-api/api/handlers"
	"clipper-app-api/api/middleware"
	"clipper-app-api/core/interfaces"
)

// Config holds configuration for the API router.
type Config struct {
	Logger interfaces.Logger

	// RateLimitPerMinute caps extraction requests per client IP.
	// Zero disables rate limiting.
	RateLimitPerMinute int
}

// NewRouter builds the HTTP handler: routes plus the middleware chain.
// CORS is wide open because the caller is a browser extension with an
// unpredictable origin.
func NewRouter(cfg Config, extract *handlers.ExtractHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handlers.Health(w, r)
	})

	mux.HandleFunc("/extract", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		extract.Extract(w, r)
	})

	var handler http.Handler = mux

	if cfg.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)
		handler = middleware.RateLimit(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLogging(cfg.Logger)(handler)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
	return c.Handler(handler)
}
