package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByVenue(ctx context.Context, venueID int64) ([]*domain.Service, error)
	Upsert(ctx context.Context, svc *domain.Service) (*domain.Service, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
