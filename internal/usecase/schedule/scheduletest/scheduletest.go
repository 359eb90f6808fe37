// Package scheduletest содержит фейковый загрузчик расписания для тестов use case.
package scheduletest

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
)

// Loader отдает фиксированные площадку, услугу и бронирования.
// Бронирования фильтруются по периоду и исключаемому ID так же, как в хранилище.
type Loader struct {
	Venue    *domain.Venue
	Service  *domain.Service
	Bookings []*domain.Booking
	Err      error

	// BookingsErr возвращается только из StaffBookings
	BookingsErr error

	LastExcludeID *int64
}

func (l *Loader) ForDay(_ context.Context, _, _, _ int64, date time.Time, excludeID *int64) (*schedule.Schedule, time.Time, error) {
	if l.Err != nil {
		return nil, time.Time{}, l.Err
	}
	loc := l.Venue.Location()
	from, to := schedule.DayBounds(date, loc)
	return l.build(loc, from, to, excludeID), from, nil
}

func (l *Loader) ForInstant(_ context.Context, _, _, _ int64, at time.Time, excludeID *int64) (*schedule.Schedule, time.Time, error) {
	if l.Err != nil {
		return nil, time.Time{}, l.Err
	}
	loc := l.Venue.Location()
	local := at.In(loc)
	from, to := schedule.DayBounds(local, loc)
	return l.build(loc, from, to, excludeID), local, nil
}

func (l *Loader) ForMonth(_ context.Context, _, _, _ int64, month time.Time) (*schedule.Schedule, time.Time, error) {
	if l.Err != nil {
		return nil, time.Time{}, l.Err
	}
	loc := l.Venue.Location()
	from, to := schedule.MonthBounds(month, loc)
	return l.build(loc, from, to, nil), from, nil
}

func (l *Loader) VenueAndService(_ context.Context, _, _ int64) (*domain.Venue, *domain.Service, error) {
	if l.Err != nil {
		return nil, nil, l.Err
	}
	return l.Venue, l.Service, nil
}

func (l *Loader) StaffBookings(_ context.Context, _ int64, from, to time.Time, excludeID *int64) ([]*domain.Booking, error) {
	if l.BookingsErr != nil {
		return nil, l.BookingsErr
	}
	return l.build(l.Venue.Location(), from, to, excludeID).Bookings, nil
}

func (l *Loader) build(loc *time.Location, from, to time.Time, excludeID *int64) *schedule.Schedule {
	l.LastExcludeID = excludeID

	bookings := make([]*domain.Booking, 0, len(l.Bookings))
	for _, b := range l.Bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Start.Before(from) || !b.Start.Before(to) {
			continue
		}
		bookings = append(bookings, b)
	}

	return &schedule.Schedule{Venue: l.Venue, Service: l.Service, Location: loc, Bookings: bookings}
}

// WeekdayVenue площадка, открытая с понедельника по субботу с openHour до closeHour
func WeekdayVenue(openHour, closeHour int) *domain.Venue {
	hours := domain.WeeklyBusinessHours{}
	for _, day := range domain.Weekdays {
		if day == domain.Sunday {
			continue
		}
		hours[day] = &domain.BusinessHoursInterval{
			OpeningTime: domain.ClockTime{Hour: openHour},
			ClosingTime: domain.ClockTime{Hour: closeHour},
		}
	}
	return &domain.Venue{ID: 1, Name: "Salon", Timezone: "UTC", BusinessHours: hours}
}

// Service услуга площадки 1 длиной lengthMinutes
func Service(lengthMinutes int) *domain.Service {
	return &domain.Service{ID: 10, VenueID: 1, Type: domain.ServiceTypeHair, Name: "hair_cut", LengthMinutes: lengthMinutes, Price: 500}
}

// Booking бронирование сотрудника 7 на интервал [start, end)
func Booking(id int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{ID: id, VenueID: 1, StaffID: 7, ServiceID: 10, Start: start, End: end}
}

// NopMetrics игнорирует метрики
type NopMetrics struct{}

func (NopMetrics) IncAvailability(string)    {}
func (NopMetrics) IncBookingConflict(string) {}
