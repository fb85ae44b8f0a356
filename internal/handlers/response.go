package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// writeJSON wraps data in a success envelope.
func writeJSON(w http.ResponseWriter, status int, data any) {
	write(w, status, models.Response{Success: true, Data: data})
}

// writeError classifies err and writes the matching error envelope.
func writeError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	status, body := classify(entity, err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"entity", entity,
			"error", err,
		)
	}
	write(w, status, models.Response{Success: false, Error: &body})
}

func write(w http.ResponseWriter, status int, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}
