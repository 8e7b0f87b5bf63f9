// Package api provides the HTTP API layer for the Clipper application.
// It exposes the extraction pipeline over plain net/http with CORS,
// request logging and per-IP rate limiting.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: router construction and middleware wiring
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// POST /extract turns a captured page snapshot (or a bare URL) into an
// article record. GET /healthz reports liveness.
//
// # Usage Example
//
//	cfg := api.Config{
//	    Logger:             logger,
//	    RateLimitPerMinute: 60,
//	}
//	handler := api.NewRouter(cfg, extractHandler)
//	http.ListenAndServe(":8000", handler)
//
// # Error Handling
//
// Errors are returned as a JSON envelope:
//
//	{
//	    "error": "URL cannot be empty"
//	}
//
// Domain errors are mapped to appropriate HTTP status codes.
package api
