package upsert_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidService     = "некорректные данные услуги"
	msgVenueNotFound      = "площадка не найдена"
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

// Handle POST /api/v1/services/upsert-many
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertManyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/upsert-many - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.UpsertMany(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput), errors.Is(err, catalog.ErrInvalidService):
			h.logger.Warn("POST /services/upsert-many - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalog.ErrVenueNotFound):
			h.logger.Warn("POST /services/upsert-many - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("POST /services/upsert-many - Failed to upsert services: venue_id=%d, error=%v", req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/upsert-many - Upserted %d services: venue_id=%d, user_id=%d", result.Total, req.VenueID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
