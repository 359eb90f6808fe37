package check_collision

import (
	"context"
	"time"
)

// UseCase use case проверки пересечения кандидата с расписанием сотрудника
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

// Execute выполняет use case проверки пересечения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckCollision: venue=%d, staff=%d, service=%d, start=%s",
		req.VenueID, req.StaffID, req.ServiceID, req.Start.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckCollision: validation failed: %v", err)
		return nil, err
	}

	sched, start, err := uc.loader.ForInstant(ctx, req.VenueID, req.ServiceID, req.StaffID, req.Start, req.ExcludeBookingID)
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAvailability("collision")
	collision := uc.engine.IsCollision(start, sched.Service, sched.Venue, sched.Bookings)

	return &Response{
		Collision: collision,
		Start:     start,
		End:       start.Add(sched.Service.Length()),
	}, nil
}
