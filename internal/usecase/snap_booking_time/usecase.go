package snap_booking_time

import (
	"context"
	"time"
)

// UseCase use case подстройки выбранного времени под расписание
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
	uc.logger.Info("SnapBookingTime: venue=%d, staff=%d, service=%d, candidate=%s",
		req.VenueID, req.StaffID, req.ServiceID, req.Candidate.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SnapBookingTime: validation failed: %v", err)
		return nil, err
	}

	sched, candidate, err := uc.loader.ForInstant(ctx, req.VenueID, req.ServiceID, req.StaffID, req.Candidate, req.ExcludeBookingID)
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAvailability("snap")
	start, ok := uc.engine.Snap(candidate, sched.Service, sched.Venue, sched.Bookings)
	if !start.Equal(candidate) {
		uc.logger.Info("SnapBookingTime: moved %s -> %s", candidate.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	return &Response{
		Start: start,
		End:   start.Add(sched.Service.Length()),
		OK:    ok,
	}, nil
}
