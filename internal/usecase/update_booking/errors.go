package update_booking

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrSlotNotAvailable возвращается, когда новое время пересекается с расписанием сотрудника
	ErrSlotNotAvailable = errors.New("update_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")

	ErrVenueNotFound             = schedule.ErrVenueNotFound
	ErrServiceNotFound           = schedule.ErrServiceNotFound
	ErrServiceNotAtVenue         = schedule.ErrServiceNotAtVenue
	ErrStaffNotFound             = schedule.ErrStaffNotFound
	ErrStaffNotAtVenue           = schedule.ErrStaffNotAtVenue
	ErrStaffDoesNotOffer         = schedule.ErrStaffDoesNotOffer
	ErrStaffDirectoryUnavailable = schedule.ErrStaffDirectoryUnavailable
)
