package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	venueRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/venue"
)

// Schedule данные, которые нужны движку доступности для одного сотрудника
type Schedule struct {
	Venue    *domain.Venue
	Service  *domain.Service
	Location *time.Location
	Bookings []*domain.Booking
}

// Loader собирает площадку, услугу и бронирования сотрудника
type Loader struct {
	venueRepo   VenueRepository
	serviceRepo ServiceRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewLoader создает загрузчик расписания
func NewLoader(venueRepo VenueRepository, serviceRepo ServiceRepository, bookingRepo BookingRepository, logger Logger) *Loader {
	return &Loader{
		venueRepo:   venueRepo,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// VenueAndService загружает площадку и услугу и проверяет, что услуга оказывается на площадке
func (l *Loader) VenueAndService(ctx context.Context, venueID, serviceID int64) (*domain.Venue, *domain.Service, error) {
	venue, err := l.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			l.logger.Warn("Schedule: venue id=%d not found", venueID)
			return nil, nil, ErrVenueNotFound
		}
		l.logger.Error("Schedule: failed to get venue id=%d: %v", venueID, err)
		return nil, nil, fmt.Errorf("%w: get venue: %v", ErrInternal, err)
	}

	if _, err := venue.LoadLocation(); err != nil {
		l.logger.Warn("Schedule: venue id=%d falls back to UTC: %v", venueID, err)
	}

	service, err := l.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			l.logger.Warn("Schedule: service id=%d not found", serviceID)
			return nil, nil, ErrServiceNotFound
		}
		l.logger.Error("Schedule: failed to get service id=%d: %v", serviceID, err)
		return nil, nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	if service.VenueID != venue.ID {
		l.logger.Warn("Schedule: service id=%d belongs to venue id=%d, not %d", serviceID, service.VenueID, venueID)
		return nil, nil, ErrServiceNotAtVenue
	}

	return venue, service, nil
}

// StaffBookings загружает бронирования сотрудника, начинающиеся в [from, to).
// excludeID исключает редактируемое бронирование.
func (l *Loader) StaffBookings(ctx context.Context, staffID int64, from, to time.Time, excludeID *int64) ([]*domain.Booking, error) {
	bookings, err := l.bookingRepo.GetByStaffWithFilter(ctx, domain.StaffBookingsFilter{
		StaffID:          staffID,
		Start:            from,
		End:              to,
		ExcludeBookingID: excludeID,
	})
	if err != nil {
		l.logger.Error("Schedule: failed to get bookings of staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: get staff bookings: %w", ErrInternal, err)
	}
	return bookings, nil
}

// ForDay загружает всё для календарного дня date (берутся только год, месяц и день)
func (l *Loader) ForDay(ctx context.Context, venueID, serviceID, staffID int64, date time.Time, excludeID *int64) (*Schedule, time.Time, error) {
	venue, service, err := l.VenueAndService(ctx, venueID, serviceID)
	if err != nil {
		return nil, time.Time{}, err
	}

	loc := venue.Location()
	from, to := DayBounds(date, loc)

	bookings, err := l.StaffBookings(ctx, staffID, from, to, excludeID)
	if err != nil {
		return nil, time.Time{}, err
	}

	return &Schedule{Venue: venue, Service: service, Location: loc, Bookings: bookings}, from, nil
}

// ForInstant загружает всё для дня, в который попадает момент at по времени площадки.
// Возвращает at в часовом поясе площадки.
func (l *Loader) ForInstant(ctx context.Context, venueID, serviceID, staffID int64, at time.Time, excludeID *int64) (*Schedule, time.Time, error) {
	venue, service, err := l.VenueAndService(ctx, venueID, serviceID)
	if err != nil {
		return nil, time.Time{}, err
	}

	loc := venue.Location()
	local := at.In(loc)
	from, to := DayBounds(local, loc)

	bookings, err := l.StaffBookings(ctx, staffID, from, to, excludeID)
	if err != nil {
		return nil, time.Time{}, err
	}

	return &Schedule{Venue: venue, Service: service, Location: loc, Bookings: bookings}, local, nil
}

// ForMonth загружает всё для календарного месяца month.
// Возвращает начало месяца по времени площадки.
func (l *Loader) ForMonth(ctx context.Context, venueID, serviceID, staffID int64, month time.Time) (*Schedule, time.Time, error) {
	venue, service, err := l.VenueAndService(ctx, venueID, serviceID)
	if err != nil {
		return nil, time.Time{}, err
	}

	loc := venue.Location()
	from, to := MonthBounds(month, loc)

	bookings, err := l.StaffBookings(ctx, staffID, from, to, nil)
	if err != nil {
		return nil, time.Time{}, err
	}

	return &Schedule{Venue: venue, Service: service, Location: loc, Bookings: bookings}, from, nil
}

// DayBounds возвращает полночь календарного дня date в loc и полночь следующего дня
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}

// MonthBounds возвращает начало месяца month в loc и начало следующего месяца
func MonthBounds(month time.Time, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}
