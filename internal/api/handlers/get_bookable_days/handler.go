package get_bookable_days

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getBookableDays "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_bookable_days"
)

const (
	msgInvalidParams     = "некорректные параметры: нужны venueId, staffId и serviceId"
	msgInvalidDate       = "некорректный формат месяца, ожидается YYYY-MM"
	msgVenueNotFound     = "площадка не найдена"
	msgServiceNotFound   = "услуга не найдена"
	msgServiceNotAtVenue = "услуга не оказывается на этой площадке"
	msgInvalidRequest    = "некорректный запрос"
)

type Handler struct {
	useCase GetBookableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	params, err := handlers.ParseScheduleParams(r)
	if err != nil {
		h.logger.Warn("GET /availability/days - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	month, err := handlers.QueryTime(r, "month", domain.MonthFormat)
	if err != nil {
		h.logger.Warn("GET /availability/days - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookableDays.Request{
		VenueID:   params.VenueID,
		StaffID:   params.StaffID,
		ServiceID: params.ServiceID,
		Month:     month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookableDays.ErrInvalidInput):
			h.logger.Warn("GET /availability/days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getBookableDays.ErrVenueNotFound):
			h.logger.Warn("GET /availability/days - Venue not found: venue_id=%d", params.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getBookableDays.ErrServiceNotFound):
			h.logger.Warn("GET /availability/days - Service not found: service_id=%d", params.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getBookableDays.ErrServiceNotAtVenue):
			h.logger.Warn("GET /availability/days - Service not at venue: venue_id=%d, service_id=%d", params.VenueID, params.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAtVenue)

		default:
			h.logger.Error("GET /availability/days - Failed to get bookable days: venue_id=%d, staff_id=%d, error=%v",
				params.VenueID, params.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
