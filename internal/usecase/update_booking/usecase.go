package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	bookingRepo BookingRepository
	loader      ScheduleLoader
	verifier    StaffVerifier
	engine      Engine
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	loader ScheduleLoader,
	verifier StaffVerifier,
	engine Engine,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		loader:      loader,
		verifier:    verifier,
		engine:      engine,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case переноса бронирования.
// Само бронирование исключается из проверки пересечений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: user=%d, booking=%d, staff=%d, service=%d, start=%s",
		req.UserID, req.BookingID, req.StaffID, req.ServiceID, req.Start.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее бронирование
	existing, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Площадка бронирования и новая услуга
	venue, service, err := uc.loader.VenueAndService(ctx, existing.VenueID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// 4. Новый сотрудник работает на площадке и оказывает услугу
	if err := uc.verifier.Verify(ctx, req.StaffID, existing.VenueID, req.ServiceID); err != nil {
		return nil, err
	}

	loc := venue.Location()
	start := req.Start.In(loc)
	from, to := schedule.DayBounds(start, loc)

	var result *domain.Booking

	// 5. Проверка и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.loader.StaffBookings(txCtx, req.StaffID, from, to, &req.BookingID)
		if err != nil {
			return err
		}

		if uc.engine.IsCollision(start, service, venue, bookings) {
			uc.metrics.IncBookingConflict("update")
			uc.logger.Warn("UpdateBooking: slot %s is not available for staff=%d", start.Format(time.RFC3339), req.StaffID)
			return ErrSlotNotAvailable
		}

		booking := *existing
		booking.StaffID = req.StaffID
		booking.ServiceID = req.ServiceID
		booking.Start = start
		booking.End = start.Add(service.Length())
		booking.Customer = req.Customer.Normalized()

		updated, err := uc.bookingRepo.Update(txCtx, &booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	return toResponse(result), nil
}
