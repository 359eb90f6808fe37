package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case для получения всех свободных стартов сотрудника на день
type UseCase struct {
	loader  ScheduleLoader
	engine  Engine
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader ScheduleLoader, engine Engine, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		loader:  loader,
		engine:  engine,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: venue=%d, staff=%d, service=%d, date=%s",
		req.VenueID, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	sched, day, err := uc.loader.ForDay(ctx, req.VenueID, req.ServiceID, req.StaffID, req.Date, nil)
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAvailability("slots")
	starts := uc.engine.AvailableStarts(day, sched.Service, sched.Venue, sched.Bookings)

	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		slots = append(slots, Slot{Start: start, End: start.Add(sched.Service.Length())})
	}

	uc.logger.Info("GetAvailableSlots: %d free slots for staff=%d on %s",
		len(slots), req.StaffID, day.Format(domain.DateFormat))

	return &Response{
		Date:     day,
		Timezone: sched.Location.String(),
		Open:     availability.ResolveBusinessHours(day, sched.Venue.BusinessHours).Open,
		Slots:    slots,
	}, nil
}
