package get_first_available

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_first_available: invalid input data")

	ErrVenueNotFound     = schedule.ErrVenueNotFound
	ErrServiceNotFound   = schedule.ErrServiceNotFound
	ErrServiceNotAtVenue = schedule.ErrServiceNotAtVenue
)
