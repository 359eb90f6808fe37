package snap_booking_time

import (
	"context"

	snapBookingTime "github.com/m04kA/SMC-SalonBooking/internal/usecase/snap_booking_time"
)

type SnapBookingTimeUseCase interface {
	Execute(ctx context.Context, req *snapBookingTime.Request) (*snapBookingTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
