// ABOUTME: Liveness endpoint handler
// ABOUTME: Reports service health for orchestration probes

package handlers

import (
	"net/http"

	"clipper-app-api/api/dto/responses"
)

// Health handles GET /healthz.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.HealthResponse{Status: "ok"})
}
