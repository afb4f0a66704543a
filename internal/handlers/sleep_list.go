package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sbilibin2017/sleep-tracker/internal/middlewares"
	"github.com/sbilibin2017/sleep-tracker/internal/models"
)

// SleepLister defines the interface that the service must implement.
type SleepLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.SleepDB, error)
}

// SleepErrorResponse represents an error response for sleep record operations
// swagger:model SleepErrorResponse
type SleepErrorResponse struct {
	// Error message
	// default: Error fetching sleep data
	Error string `json:"error"`
}

// NewSleepListHandler returns an HTTP handler that lists the caller's sleep records.
// @Summary List sleep records
// @Description Returns all sleep records owned by the authenticated user
// @Tags sleeps
// @Produce json
// @Success 200 {array} models.SleepDB "Sleep records"
// @Failure 401 {object} handlers.SleepErrorResponse "Access denied"
// @Failure 403 {object} handlers.SleepErrorResponse "Invalid token"
// @Failure 500 {object} handlers.SleepErrorResponse "Internal server error"
// @Router /api/sleeps/sleepdata [get]
// @Security BearerAuth
func NewSleepListHandler(svc SleepLister, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error("unauthorized list request: no user in context")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SleepErrorResponse{
				Error: "Access denied",
			})
			return
		}

		sleeps, err := svc.List(r.Context(), userID)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SleepErrorResponse{
				Error: "Error fetching sleep data",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(sleeps)
	}
}
