package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка идут в одной сериализуемой транзакции,
// бронирования сотрудника за день читаются с блокировкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, venue=%d, staff=%d, service=%d, start=%s",
		req.UserID, req.VenueID, req.StaffID, req.ServiceID, req.Start.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Площадка и услуга
	venue, service, err := uc.loader.VenueAndService(ctx, req.VenueID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// 3. Сотрудник работает на площадке и оказывает услугу
	if err := uc.verifier.Verify(ctx, req.StaffID, req.VenueID, req.ServiceID); err != nil {
		return nil, err
	}

	// 4. Переводим старт во время площадки
	loc := venue.Location()
	start := req.Start.In(loc)
	from, to := schedule.DayBounds(start, loc)

	var result *domain.Booking

	// 5. Повторная проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.loader.StaffBookings(txCtx, req.StaffID, from, to, nil)
		if err != nil {
			return err
		}

		if uc.engine.IsCollision(start, service, venue, bookings) {
			uc.metrics.IncBookingConflict("create")
			uc.logger.Warn("CreateBooking: slot %s is not available for staff=%d", start.Format(time.RFC3339), req.StaffID)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			VenueID:   req.VenueID,
			StaffID:   req.StaffID,
			ServiceID: req.ServiceID,
			Start:     start,
			End:       start.Add(service.Length()),
			Customer:  req.Customer.Normalized(),
			CreatedBy: req.UserID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return toResponse(result), nil
}
