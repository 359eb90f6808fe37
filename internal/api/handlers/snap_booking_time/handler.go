package snap_booking_time

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	snapBookingTime "github.com/m04kA/SMC-SalonBooking/internal/usecase/snap_booking_time"
)

const (
	msgInvalidParams     = "некорректные параметры: нужны venueId, staffId и serviceId"
	msgInvalidStart      = "некорректный формат start, ожидается RFC 3339"
	msgInvalidExcludeID  = "некорректный excludeBookingId"
	msgVenueNotFound     = "площадка не найдена"
	msgServiceNotFound   = "услуга не найдена"
	msgServiceNotAtVenue = "услуга не оказывается на этой площадке"
	msgInvalidRequest    = "некорректный запрос"
)

type Handler struct {
	useCase SnapBookingTimeUseCase
	logger  Logger
}

func NewHandler(useCase SnapBookingTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability/snap
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	params, err := handlers.ParseScheduleParams(r)
	if err != nil {
		h.logger.Warn("GET /availability/snap - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	start, err := handlers.QueryTime(r, "start", time.RFC3339)
	if err != nil {
		h.logger.Warn("GET /availability/snap - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	excludeID, err := handlers.OptionalQueryInt64(r, "excludeBookingId")
	if err != nil {
		h.logger.Warn("GET /availability/snap - Invalid excludeBookingId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExcludeID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &snapBookingTime.Request{
		VenueID:          params.VenueID,
		StaffID:          params.StaffID,
		ServiceID:        params.ServiceID,
		Candidate:        start,
		ExcludeBookingID: excludeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, snapBookingTime.ErrInvalidInput):
			h.logger.Warn("GET /availability/snap - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, snapBookingTime.ErrVenueNotFound):
			h.logger.Warn("GET /availability/snap - Venue not found: venue_id=%d", params.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, snapBookingTime.ErrServiceNotFound):
			h.logger.Warn("GET /availability/snap - Service not found: service_id=%d", params.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, snapBookingTime.ErrServiceNotAtVenue):
			h.logger.Warn("GET /availability/snap - Service not at venue: venue_id=%d, service_id=%d", params.VenueID, params.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAtVenue)

		default:
			h.logger.Error("GET /availability/snap - Failed to snap start: venue_id=%d, staff_id=%d, error=%v",
				params.VenueID, params.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
