package venue

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Repository источник данных площадок (PostgreSQL)
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	UpdateBusinessHours(ctx context.Context, id int64, hours domain.WeeklyBusinessHours) error
}

// Metrics счетчик обращений к кешу
type Metrics interface {
	IncCache(cache, result string)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
