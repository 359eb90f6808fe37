package get_first_available

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getFirstAvailable "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_first_available"
)

const (
	msgInvalidParams     = "некорректные параметры: нужны venueId, staffId и serviceId"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVenueNotFound     = "площадка не найдена"
	msgServiceNotFound   = "услуга не найдена"
	msgServiceNotAtVenue = "услуга не оказывается на этой площадке"
	msgInvalidRequest    = "некорректный запрос"
)

type Handler struct {
	useCase GetFirstAvailableUseCase
	logger  Logger
}

func NewHandler(useCase GetFirstAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability/first
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	params, err := handlers.ParseScheduleParams(r)
	if err != nil {
		h.logger.Warn("GET /availability/first - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	date, err := handlers.QueryTime(r, "date", domain.DateFormat)
	if err != nil {
		h.logger.Warn("GET /availability/first - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFirstAvailable.Request{
		VenueID:   params.VenueID,
		StaffID:   params.StaffID,
		ServiceID: params.ServiceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFirstAvailable.ErrInvalidInput):
			h.logger.Warn("GET /availability/first - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getFirstAvailable.ErrVenueNotFound):
			h.logger.Warn("GET /availability/first - Venue not found: venue_id=%d", params.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getFirstAvailable.ErrServiceNotFound):
			h.logger.Warn("GET /availability/first - Service not found: service_id=%d", params.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getFirstAvailable.ErrServiceNotAtVenue):
			h.logger.Warn("GET /availability/first - Service not at venue: venue_id=%d, service_id=%d", params.VenueID, params.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAtVenue)

		default:
			h.logger.Error("GET /availability/first - Failed to find first slot: venue_id=%d, staff_id=%d, error=%v",
				params.VenueID, params.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
