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

// SleepCreator defines the interface that the service must implement.
type SleepCreator interface {
	Create(ctx context.Context, userID uuid.UUID, date string, hours float64, quality string) (*models.SleepDB, error)
}

// SleepRequest represents the JSON body for creating or updating a sleep record
// swagger:model SleepRequest
type SleepRequest struct {
	// Calendar date of the sleep entry, stored as submitted
	// required: true
	// default: 2024-01-01
	Date string `json:"date"`

	// Hours slept
	// required: true
	// default: 7.5
	Hours float64 `json:"hours"`

	// Sleep quality: Poor, Average, Good or Excellent
	// required: true
	// default: Good
	Quality string `json:"quality"`
}

// SleepCreateResponse represents a successful creation response
// swagger:model SleepCreateResponse
type SleepCreateResponse struct {
	// Success message
	// default: Sleep data submitted successfully
	Message string `json:"message"`

	// The created sleep record
	Sleep *models.SleepDB `json:"sleep"`
}

// NewSleepCreateHandler returns an HTTP handler that records a sleep entry for the caller.
// @Summary Create a sleep record
// @Description Stores a new sleep record owned by the authenticated user
// @Tags sleeps
// @Accept json
// @Produce json
// @Param sleepRequest body handlers.SleepRequest true "Sleep record"
// @Success 201 {object} handlers.SleepCreateResponse "Sleep record created"
// @Failure 400 {object} handlers.SleepErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.SleepErrorResponse "Access denied"
// @Failure 403 {object} handlers.SleepErrorResponse "Invalid token"
// @Failure 500 {object} handlers.SleepErrorResponse "Internal server error"
// @Router /api/sleeps [post]
// @Security BearerAuth
func NewSleepCreateHandler(svc SleepCreator, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error("unauthorized create request: no user in context")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SleepErrorResponse{
				Error: "Access denied",
			})
			return
		}

		var req SleepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SleepErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		sleep, err := svc.Create(r.Context(), userID, req.Date, req.Hours, req.Quality)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SleepErrorResponse{
				Error: "Error submitting sleep data",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SleepCreateResponse{
			Message: "Sleep data submitted successfully",
			Sleep:   sleep,
		})
	}
}
