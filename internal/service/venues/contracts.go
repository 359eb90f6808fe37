package venues

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// VenueRepository интерфейс репозитория площадок (обычно кеширующий)
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	UpdateBusinessHours(ctx context.Context, id int64, hours domain.WeeklyBusinessHours) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
