package get_bookable_days

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case календаря доступных дней.
// Бронирования загружаются один раз на месяц, движок вызывается по одному разу на день.
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
	uc.logger.Info("GetBookableDays: venue=%d, staff=%d, service=%d, month=%s",
		req.VenueID, req.StaffID, req.ServiceID, req.Month.Format(domain.MonthFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookableDays: validation failed: %v", err)
		return nil, err
	}

	sched, first, err := uc.loader.ForMonth(ctx, req.VenueID, req.ServiceID, req.StaffID, req.Month)
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAvailability("days")

	days := make([]Day, 0, 31)
	bookable := 0
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		item := Day{Date: day, Weekday: domain.WeekdayOf(day)}

		if start := uc.engine.FirstAvailable(day, sched.Service, sched.Venue, sched.Bookings); start != nil {
			item.Bookable = true
			item.FirstSlot = &Slot{Start: *start, End: start.Add(sched.Service.Length())}
			bookable++
		}

		days = append(days, item)
	}

	uc.logger.Info("GetBookableDays: %d of %d days bookable for staff=%d", bookable, len(days), req.StaffID)

	return &Response{
		Month:    first,
		Timezone: sched.Location.String(),
		Weekdays: domain.Weekdays,
		Days:     days,
	}, nil
}
