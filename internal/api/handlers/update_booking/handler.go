package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	updateBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

const (
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidRequest       = "некорректные данные бронирования"
	msgBookingNotFound      = "бронирование не найдено"
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
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrSlotNotAvailable):
			h.logger.Warn("PUT /bookings/{id} - Slot not available: booking_id=%d, start=%s", bookingID, req.Start)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case txmanager.IsSerializationFailure(err):
			h.logger.Warn("PUT /bookings/{id} - Concurrent update: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, updateBooking.ErrVenueNotFound):
			h.logger.Warn("PUT /bookings/{id} - Venue not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, updateBooking.ErrServiceNotFound):
			h.logger.Warn("PUT /bookings/{id} - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateBooking.ErrStaffNotFound):
			h.logger.Warn("PUT /bookings/{id} - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, updateBooking.ErrServiceNotAtVenue):
			h.logger.Warn("PUT /bookings/{id} - Service not at venue: booking_id=%d, service_id=%d", bookingID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAtVenue)

		case errors.Is(err, updateBooking.ErrStaffNotAtVenue):
			h.logger.Warn("PUT /bookings/{id} - Staff not at venue: booking_id=%d, staff_id=%d", bookingID, req.StaffID)
			handlers.RespondBadRequest(w, msgStaffNotAtVenue)

		case errors.Is(err, updateBooking.ErrStaffDoesNotOffer):
			h.logger.Warn("PUT /bookings/{id} - Staff does not offer service: staff_id=%d, service_id=%d", req.StaffID, req.ServiceID)
			handlers.RespondBadRequest(w, msgStaffDoesNotOffer)

		case errors.Is(err, updateBooking.ErrStaffDirectoryUnavailable):
			h.logger.Error("PUT /bookings/{id} - Staff directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgDirectoryUnavailable)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
