package handler

import (
	"net/http"
	"time"

	"github.com/mcoot/geofinder-go/internal/api/response"
	"github.com/mcoot/geofinder-go/internal/game"
)

// HealthHandler reports liveness and a rough load indicator
type HealthHandler struct {
	registry *game.Registry
}

// NewHealthHandler creates a health handler
func NewHealthHandler(registry *game.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// HealthResponse is the health endpoint body
type HealthResponse struct {
	Status      string    `json:"status"`
	Time        time.Time `json:"time"`
	ActiveRooms int       `json:"activeRooms"`
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Time:        time.Now().UTC(),
		ActiveRooms: h.registry.Count(),
	})
}
