package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// NewHealthHandler returns an HTTP handler reporting that the service is up.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(models.HealthResponse{Success: true}); err != nil {
			logger.Log.Errorw("failed to encode response", "error", err)
		}
	}
}
