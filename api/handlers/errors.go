// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	"clipper-app-api/api/dto/responses"
	"clipper-app-api/core/errors"
)

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.IsExternalAPI(err):
		if apiErr, ok := err.(*errors.ExternalAPIError); ok {
			switch {
			case apiErr.StatusCode == http.StatusTooManyRequests:
				return http.StatusTooManyRequests
			case apiErr.StatusCode >= 500 || apiErr.StatusCode == 0:
				return http.StatusBadGateway
			case apiErr.StatusCode >= 400:
				return http.StatusBadRequest
			}
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes a JSON error envelope with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(responses.ErrorResponse{Error: message})
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
