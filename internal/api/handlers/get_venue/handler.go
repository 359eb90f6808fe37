package get_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
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

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := handlers.PathInt64(r, "venueId")
	if err != nil {
		h.logger.Warn("GET /venues/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	venue, err := h.service.Get(r.Context(), venueID)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			h.logger.Warn("GET /venues/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)
			return
		}
		h.logger.Error("GET /venues/{id} - Failed to get venue: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, venue)
}
