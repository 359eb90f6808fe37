package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidRequest       = "некорректные данные бронирования"
	msgSlotNotAvailable     = "выбранное время недоступно"
	msgConcurrentUpdate     = "расписание изменилось, повторите попытку"
	msgVenueNotFound        = "площадка не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceNotAtVenue    = "услуга не оказывается на этой площадке"
	msgStaffNotFound        = "сотрудник не найден"
	msgStaffNotAtVenue      = "сотрудник не работает на этой площадке"
	msgStaffDoesNotOffer    = "сотрудник не оказывает эту услугу"
	msgDirectoryUnavailable = "справочник персонала недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: staff_id=%d, start=%s", req.StaffID, req.Start)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case txmanager.IsSerializationFailure(err):
			h.logger.Warn("POST /bookings - Concurrent booking: staff_id=%d, start=%s", req.StaffID, req.Start)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrServiceNotAtVenue):
			h.logger.Warn("POST /bookings - Service not at venue: venue_id=%d, service_id=%d", req.VenueID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAtVenue)

		case errors.Is(err, createBooking.ErrStaffNotAtVenue):
			h.logger.Warn("POST /bookings - Staff not at venue: venue_id=%d, staff_id=%d", req.VenueID, req.StaffID)
			handlers.RespondBadRequest(w, msgStaffNotAtVenue)

		case errors.Is(err, createBooking.ErrStaffDoesNotOffer):
			h.logger.Warn("POST /bookings - Staff does not offer service: staff_id=%d, service_id=%d", req.StaffID, req.ServiceID)
			handlers.RespondBadRequest(w, msgStaffDoesNotOffer)

		case errors.Is(err, createBooking.ErrStaffDirectoryUnavailable):
			h.logger.Error("POST /bookings - Staff directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgDirectoryUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, venue_id=%d, error=%v",
				userID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, staff_id=%d",
		result.ID, userID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
