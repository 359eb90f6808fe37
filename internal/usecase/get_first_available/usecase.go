package get_first_available

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case поиска первого свободного старта за день
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

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFirstAvailable: venue=%d, staff=%d, service=%d, date=%s",
		req.VenueID, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFirstAvailable: validation failed: %v", err)
		return nil, err
	}

	sched, day, err := uc.loader.ForDay(ctx, req.VenueID, req.ServiceID, req.StaffID, req.Date, nil)
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAvailability("first")

	resp := &Response{
		Date:     day,
		Timezone: sched.Location.String(),
		Open:     sched.Venue.IsOpenOn(day),
	}

	start := uc.engine.FirstAvailable(day, sched.Service, sched.Venue, sched.Bookings)
	if start == nil {
		uc.logger.Info("GetFirstAvailable: no free slot for staff=%d on %s", req.StaffID, day.Format(domain.DateFormat))
		return resp, nil
	}

	resp.Slot = &Slot{Start: *start, End: start.Add(sched.Service.Length())}
	return resp, nil
}
