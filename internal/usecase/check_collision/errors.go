package check_collision

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_collision: invalid input data")

	ErrVenueNotFound     = schedule.ErrVenueNotFound
	ErrServiceNotFound   = schedule.ErrServiceNotFound
	ErrServiceNotAtVenue = schedule.ErrServiceNotAtVenue
)
