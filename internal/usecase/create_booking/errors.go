package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

var (
	// ErrSlotNotAvailable возвращается, когда услуга пересекается с расписанием сотрудника
	// или не помещается в рабочие часы
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")

	ErrVenueNotFound             = schedule.ErrVenueNotFound
	ErrServiceNotFound           = schedule.ErrServiceNotFound
	ErrServiceNotAtVenue         = schedule.ErrServiceNotAtVenue
	ErrStaffNotFound             = schedule.ErrStaffNotFound
	ErrStaffNotAtVenue           = schedule.ErrStaffNotAtVenue
	ErrStaffDoesNotOffer         = schedule.ErrStaffDoesNotOffer
	ErrStaffDirectoryUnavailable = schedule.ErrStaffDirectoryUnavailable
)
