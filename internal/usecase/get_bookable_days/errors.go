package get_bookable_days

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_bookable_days: invalid input data")

	ErrVenueNotFound     = schedule.ErrVenueNotFound
	ErrServiceNotFound   = schedule.ErrServiceNotFound
	ErrServiceNotAtVenue = schedule.ErrServiceNotAtVenue
)
