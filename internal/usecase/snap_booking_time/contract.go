package snap_booking_time

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

// ScheduleLoader загружает расписание дня, в который попадает момент
type ScheduleLoader interface {
	ForInstant(ctx context.Context, venueID, serviceID, staffID int64, at time.Time, excludeID *int64) (*schedule.Schedule, time.Time, error)
}

// Engine движок доступности
type Engine interface {
	Snap(candidate time.Time, service *domain.Service, venue *domain.Venue, bookings []*domain.Booking) (time.Time, bool)
}

// Metrics счетчик вызовов движка
type Metrics interface {
	IncAvailability(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
