package get_first_available

import (
	"context"

	getFirstAvailable "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_first_available"
)

type GetFirstAvailableUseCase interface {
	Execute(ctx context.Context, req *getFirstAvailable.Request) (*getFirstAvailable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
