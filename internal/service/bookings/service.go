package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByStaff получает бронирования сотрудника, начинающиеся в периоде [Start, End).
// Период не длиннее domain.MaxBookingRangeDays (календарь показывает максимум два месяца).
func (s *Service) ListByStaff(ctx context.Context, req *models.ListStaffBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByStaff: staff=%d, period=%s - %s",
		req.StaffID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if !req.End.After(req.Start) {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}
	if req.End.Sub(req.Start) > time.Duration(domain.MaxBookingRangeDays)*24*time.Hour {
		return nil, fmt.Errorf("%w: period is longer than %d days", ErrInvalidTimeRange, domain.MaxBookingRangeDays)
	}

	bookings, err := s.bookingRepo.GetByStaffWithFilter(ctx, domain.StaffBookingsFilter{
		StaffID: req.StaffID,
		Start:   req.Start,
		End:     req.End,
	})
	if err != nil {
		s.logger.Error("ListByStaff: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: ListByStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}
