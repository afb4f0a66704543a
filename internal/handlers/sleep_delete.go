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
	"github.com/sbilibin2017/sleep-tracker/internal/services"
)

// SleepDeleter defines the interface that the service must implement.
type SleepDeleter interface {
	Delete(ctx context.Context, userID, sleepID uuid.UUID) error
}

// NewSleepDeleteHandler returns an HTTP handler that removes a sleep record.
// @Summary Delete a sleep record
// @Description Removes the record with the given id. Only the record's owner may delete it. Deleting an absent id is a 404, not a silent success.
// @Tags sleeps
// @Produce json
// @Param id path string true "Sleep record ID"
// @Success 200 {object} handlers.SleepMessageResponse "Sleep record deleted"
// @Failure 403 {object} handlers.SleepMessageResponse "Record owned by another user"
// @Failure 404 {object} handlers.SleepMessageResponse "Sleep record not found"
// @Failure 500 {object} handlers.SleepMessageResponse "Internal server error"
// @Router /api/sleeps/{id} [delete]
// @Security BearerAuth
func NewSleepDeleteHandler(svc SleepDeleter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error("unauthorized delete request: no user in context")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SleepErrorResponse{
				Error: "Access denied",
			})
			return
		}

		sleepID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			// A malformed id cannot name an existing record.
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SleepMessageResponse{
				Message: "Sleep record not found",
			})
			return
		}

		if err := svc.Delete(r.Context(), userID, sleepID); err != nil {
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
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SleepMessageResponse{
					Message: "Error deleting sleep record",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SleepMessageResponse{
			Message: "Sleep record deleted",
		})
	}
}
