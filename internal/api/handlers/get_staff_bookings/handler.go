package get_staff_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidPeriod  = "некорректный период: нужны start и end в формате RFC 3339"
	msgInvalidRange   = "некорректный период: end должен быть позже start, не больше двух месяцев"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/bookings?start=...&end=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/bookings - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	start, err := handlers.QueryTime(r, "start", time.RFC3339)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/bookings - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	end, err := handlers.QueryTime(r, "end", time.RFC3339)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/bookings - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.ListByStaff(r.Context(), &models.ListStaffBookingsRequest{
		StaffID: staffID,
		Start:   start,
		End:     end,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidTimeRange), errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/bookings - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /staff/{id}/bookings - Failed to list bookings: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/bookings - Found %d bookings for staff_id=%d", result.Total, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
