package list_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := handlers.PathInt64(r, "venueId")
	if err != nil {
		h.logger.Warn("GET /venues/{id}/services - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.service.ListByVenue(r.Context(), venueID)
	if err != nil {
		if errors.Is(err, catalog.ErrVenueNotFound) {
			h.logger.Warn("GET /venues/{id}/services - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)
			return
		}
		h.logger.Error("GET /venues/{id}/services - Failed to list services: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
