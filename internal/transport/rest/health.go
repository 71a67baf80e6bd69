package rest

import (
	"net/http"
	"time"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// HealthResponse is the JSON response for /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200 and never calls upstream.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	})
}
