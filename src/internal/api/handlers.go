package api

import (
	"encoding/json"
	"net/http"

	"github.com/marthasimmons/airports-endpoint/src/internal/airports"
	"github.com/marthasimmons/airports-endpoint/src/internal/log"
)

// Handler manages all API endpoints and dependencies.
type Handler struct {
	dir             *airports.Directory
	defaultPageSize int
}

// NewHandler creates a new API handler serving dir.
func NewHandler(dir *airports.Directory, defaultPageSize int) *Handler {
	return &Handler{
		dir:             dir,
		defaultPageSize: defaultPageSize,
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warnf("Failed to encode response: %v", err)
	}
}

// writeText writes a plain text response.
func writeText(w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(text)); err != nil {
		log.Warnf("Failed to write response: %v", err)
	}
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// CheckHealth reports liveness.
// GET /health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Airports: h.dir.Len(),
	})
}
