package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sbilibin2017/sleep-tracker/internal/middlewares"
	"github.com/sbilibin2017/sleep-tracker/internal/models"
	"github.com/sbilibin2017/sleep-tracker/internal/services"
)

// SleepUpdater defines the interface that the service must implement.
type SleepUpdater interface {
	Update(ctx context.Context, userID, sleepID uuid.UUID, date string, hours float64, quality string) (*models.SleepDB, error)
}

// SleepMessageResponse represents a message response for sleep record operations
// swagger:model SleepMessageResponse
type SleepMessageResponse struct {
	// Message
	// default: Sleep record not found
	Message string `json:"message"`
}

// NewSleepUpdateHandler returns an HTTP handler that replaces a sleep record's fields.
// @Summary Update a sleep record
// @Description Replaces date, hours and quality of the record with the given id. Only the record's owner may update it.
// @Tags sleeps
// @Accept json
// @Produce json
// @Param id path string true "Sleep record ID"
// @Param sleepRequest body handlers.SleepRequest true "Replacement fields"
// @Success 200 {object} models.SleepDB "Updated sleep record"
// @Failure 400 {object} handlers.SleepMessageResponse "Invalid id or request body"
// @Failure 403 {object} handlers.SleepMessageResponse "Record owned by another user"
// @Failure 404 {object} handlers.SleepMessageResponse "Sleep record not found"
// @Router /api/sleeps/{id} [put]
// @Security BearerAuth
func NewSleepUpdateHandler(svc SleepUpdater, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error("unauthorized update request: no user in context")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SleepErrorResponse{
				Error: "Access denied",
			})
			return
		}

		sleepID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SleepMessageResponse{
				Message: "invalid sleep record id",
			})
			return
		}

		var req SleepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SleepMessageResponse{
				Message: "invalid request body",
			})
			return
		}

		sleep, err := svc.Update(r.Context(), userID, sleepID, req.Date, req.Hours, req.Quality)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSleepNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SleepMessageResponse{
					Message: "Sleep record not found",
				})
			case errors.Is(err, services.ErrNotRecordOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(SleepMessageResponse{
					Message: "Forbidden",
				})
			default:
				log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SleepMessageResponse{
					Message: "Error updating sleep record",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(sleep)
	}
}
