package check_collision

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	checkCollision "github.com/m04kA/SMC-SalonBooking/internal/usecase/check_collision"
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
	useCase CheckCollisionUseCase
	logger  Logger
}

func NewHandler(useCase CheckCollisionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability/collision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	params, err := handlers.ParseScheduleParams(r)
	if err != nil {
		h.logger.Warn("GET /availability/collision - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	start, err := handlers.QueryTime(r, "start", time.RFC3339)
	if err != nil {
		h.logger.Warn("GET /availability/collision - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	excludeID, err := handlers.OptionalQueryInt64(r, "excludeBookingId")
	if err != nil {
		h.logger.Warn("GET /availability/collision - Invalid excludeBookingId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExcludeID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkCollision.Request{
		VenueID:          params.VenueID,
		StaffID:          params.StaffID,
		ServiceID:        params.ServiceID,
		Start:            start,
		ExcludeBookingID: excludeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkCollision.ErrInvalidInput):
			h.logger.Warn("GET /availability/collision - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, checkCollision.ErrVenueNotFound):
			h.logger.Warn("GET /availability/collision - Venue not found: venue_id=%d", params.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, checkCollision.ErrServiceNotFound):
			h.logger.Warn("GET /availability/collision - Service not found: service_id=%d", params.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, checkCollision.ErrServiceNotAtVenue):
			h.logger.Warn("GET /availability/collision - Service not at venue: venue_id=%d, service_id=%d", params.VenueID, params.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAtVenue)

		default:
			h.logger.Error("GET /availability/collision - Failed to check collision: venue_id=%d, staff_id=%d, error=%v",
				params.VenueID, params.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
