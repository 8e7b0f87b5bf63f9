// ABOUTME: Response DTOs for the extraction endpoint
// ABOUTME: Wraps the article record with response-level metadata

package responses

import "clipper-app-api/core/domain"

// ExtractResponse is the POST /extract response body.
type ExtractResponse struct {
	Article domain.ArticleRecord `json:"article"`

	// Cached reports whether the record came from the serialized result
	// cache rather than a fresh extraction.
	Cached bool `json:"cached"`
}

// ErrorResponse is the JSON envelope for request failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the GET /healthz response body.
type HealthResponse struct {
	Status string `json:"status"`
}
