package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	venueRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/venue"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

// Service каталог услуг площадок
type Service struct {
	serviceRepo  ServiceRepository
	venueRepo    VenueRepository
	txManager    TransactionManager
	chunkMinutes int
	logger       Logger
}

// NewService создает каталог. chunkMinutes - шаг, которому кратна длительность услуг.
func NewService(
	serviceRepo ServiceRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	chunkMinutes int,
	logger Logger,
) *Service {
	if chunkMinutes <= 0 {
		chunkMinutes = domain.DefaultServiceLengthChunkMinutes
	}
	return &Service{
		serviceRepo:  serviceRepo,
		venueRepo:    venueRepo,
		txManager:    txManager,
		chunkMinutes: chunkMinutes,
		logger:       logger,
	}
}

// ListByVenue получает услуги площадки
func (s *Service) ListByVenue(ctx context.Context, venueID int64) (*models.ServiceListResponse, error) {
	if err := s.checkVenue(ctx, venueID); err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.ListByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error("ListByVenue: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListByVenue - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// UpsertMany создает или обновляет услуги площадки одной транзакцией.
// Все услуги проверяются до записи; одна некорректная услуга отклоняет весь запрос.
func (s *Service) UpsertMany(ctx context.Context, req *models.UpsertManyRequest) (*models.ServiceListResponse, error) {
	s.logger.Info("UpsertMany: venue id=%d, %d services", req.VenueID, len(req.Services))

	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if len(req.Services) == 0 {
		return nil, fmt.Errorf("%w: services are required", ErrInvalidInput)
	}

	services := make([]*domain.Service, 0, len(req.Services))
	for _, in := range req.Services {
		svc, err := toDomainService(req.VenueID, in, s.chunkMinutes)
		if err != nil {
			s.logger.Warn("UpsertMany: validation failed for venue id=%d: %v", req.VenueID, err)
			return nil, err
		}
		services = append(services, svc)
	}

	if err := s.checkVenue(ctx, req.VenueID); err != nil {
		return nil, err
	}

	saved := make([]*domain.Service, 0, len(services))
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, svc := range services {
			result, err := s.serviceRepo.Upsert(txCtx, svc)
			if err != nil {
				return fmt.Errorf("%w: UpsertMany - upsert %s: %v", ErrInternal, svc.Name, err)
			}
			saved = append(saved, result)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpsertMany: venue id=%d: %v", req.VenueID, err)
		return nil, err
	}

	s.logger.Info("UpsertMany: venue id=%d, %d services saved", req.VenueID, len(saved))
	return models.FromDomainServiceList(saved), nil
}

func (s *Service) checkVenue(ctx context.Context, venueID int64) error {
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("catalog: venue id=%d not found", venueID)
			return ErrVenueNotFound
		}
		s.logger.Error("catalog: failed to get venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: get venue: %v", ErrInternal, err)
	}
	return nil
}
