package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/venues"
	"github.com/m04kA/SMC-SalonBooking/internal/service/venues/models"
)

const (
	msgInvalidVenueID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректное расписание работы"
	msgVenueNotFound      = "площадка не найдена"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/venues/{venueId}/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := handlers.PathInt64(r, "venueId")
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/business-hours - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req models.UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id}/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	venue, err := h.service.UpdateBusinessHours(r.Context(), venueID, &req)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidBusinessHours):
			h.logger.Warn("PUT /venues/{id}/business-hours - Invalid hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{id}/business-hours - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("PUT /venues/{id}/business-hours - Failed to update: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id}/business-hours - Updated: venue_id=%d, user_id=%d", venueID, userID)
	handlers.RespondJSON(w, http.StatusOK, venue)
}
