package snap_booking_time

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("snap_booking_time: invalid input data")

	ErrVenueNotFound     = schedule.ErrVenueNotFound
	ErrServiceNotFound   = schedule.ErrServiceNotFound
	ErrServiceNotAtVenue = schedule.ErrServiceNotAtVenue
)
