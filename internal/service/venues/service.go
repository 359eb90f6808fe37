package venues

import (
	"context"
	"errors"
	"fmt"

	venueRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/venue"
	"github.com/m04kA/SMC-SalonBooking/internal/service/venues/models"
)

// Service сервис площадок
type Service struct {
	venueRepo VenueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// Get получает площадку по ID
func (s *Service) Get(ctx context.Context, id int64) (*models.VenueResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Get: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Get: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVenue(venue), nil
}

// UpdateBusinessHours заменяет недельное расписание площадки и возвращает обновленную площадку
func (s *Service) UpdateBusinessHours(ctx context.Context, id int64, req *models.UpdateBusinessHoursRequest) (*models.VenueResponse, error) {
	s.logger.Info("UpdateBusinessHours: venue id=%d, %d days", id, len(req.BusinessHours))

	hours, err := toWeeklyBusinessHours(req.BusinessHours)
	if err != nil {
		s.logger.Warn("UpdateBusinessHours: validation failed for venue id=%d: %v", id, err)
		return nil, err
	}

	if err := s.venueRepo.UpdateBusinessHours(ctx, id, hours); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("UpdateBusinessHours: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("UpdateBusinessHours: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBusinessHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBusinessHours: venue id=%d updated", id)
	return s.Get(ctx, id)
}
