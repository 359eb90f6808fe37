package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ScheduleLoader загружает площадку, услугу и бронирования сотрудника
type ScheduleLoader interface {
	VenueAndService(ctx context.Context, venueID, serviceID int64) (*domain.Venue, *domain.Service, error)
	StaffBookings(ctx context.Context, staffID int64, from, to time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// StaffVerifier проверяет сотрудника по справочнику персонала
type StaffVerifier interface {
	Verify(ctx context.Context, staffID, venueID, serviceID int64) error
}

// Engine движок доступности
type Engine interface {
	IsCollision(start time.Time, service *domain.Service, venue *domain.Venue, bookings []*domain.Booking) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик конфликтов бронирования
type Metrics interface {
	IncBookingConflict(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
