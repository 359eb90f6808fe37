package get_first_available

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

// ScheduleLoader загружает площадку, услугу и бронирования сотрудника на день
type ScheduleLoader interface {
	ForDay(ctx context.Context, venueID, serviceID, staffID int64, date time.Time, excludeID *int64) (*schedule.Schedule, time.Time, error)
}

// Engine движок доступности
type Engine interface {
	FirstAvailable(day time.Time, service *domain.Service, venue *domain.Venue, bookings []*domain.Booking) *time.Time
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
