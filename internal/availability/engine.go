package availability

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ErrInvalidStep возвращается, когда шаг поиска слотов не положительный
var ErrInvalidStep = errors.New("availability: step must be positive")

// Config параметры движка доступности
type Config struct {
	StepMinutes int // Шаг сетки поиска от времени открытия (обычно 15)
}

// Engine decides whether a service can start at a given instant and searches
// the day grid for free starts. It holds no state besides its configuration,
// so one instance is safe for concurrent use.
//
// Constraint: every booking is assumed to start on a step boundary relative to
// the venue opening time. A free slot that begins off the grid is never found.
type Engine struct {
	step time.Duration
}

// NewEngine создает движок с явной конфигурацией
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.StepMinutes <= 0 {
		return nil, ErrInvalidStep
	}
	return &Engine{step: time.Duration(cfg.StepMinutes) * time.Minute}, nil
}

// Step returns the search grid step
func (e *Engine) Step() time.Duration {
	return e.step
}

// IsCollision reports whether placing service at start is illegal: the venue is
// closed that day, the service does not fit into the business hours, or it
// overlaps one of bookings. Bookings are half-open [start, end); a candidate that
// ends exactly when a booking starts does not collide.
//
// A nil venue, a nil service or a non-positive service length is always a collision.
func (e *Engine) IsCollision(start time.Time, service *domain.Service, venue *domain.Venue, bookings []*domain.Booking) bool {
	if venue == nil || service == nil || service.LengthMinutes <= 0 {
		return true
	}

	// 1. Выходной день
	hours := ResolveBusinessHours(start, venue.BusinessHours)
	if !hours.Open {
		return true
	}

	// 2. Услуга не помещается в рабочий день
	if service.LengthMinutes > hours.OpenMinutes() {
		return true
	}

	// 3. Начало до открытия или окончание после закрытия
	length := service.Length()
	latestStart := hours.Closing.Add(-length)
	if MinuteBefore(start, hours.Opening) || MinuteAfter(start, latestStart) {
		return true
	}

	// 4. Нет бронирований - нет пересечений
	if len(bookings) == 0 {
		return false
	}

	// 5. Проверяем каждое бронирование
	end := start.Add(length)
	for _, booking := range bookings {
		if booking == nil {
			continue
		}
		if overlaps(start, end, booking) {
			return true
		}
	}

	return false
}

// overlaps проверяет пересечение кандидата [start, end) с бронированием.
// Порядок проверок важен: граница end == booking.Start разрешена
// до проверок на попадание конца внутрь бронирования.
func overlaps(start, end time.Time, booking *domain.Booking) bool {
	// Кандидат начинается внутри бронирования
	if SameMinuteOrAfter(start, booking.Start) && MinuteBefore(start, booking.End) {
		return true
	}

	// Бронирования встык
	if SameMinute(end, booking.Start) {
		return false
	}

	// Кандидат заканчивается внутри бронирования
	if MinuteAfter(end, booking.Start) && MinuteBefore(end, booking.End) {
		return true
	}

	// Кандидат полностью накрывает бронирование
	if MinuteBefore(start, booking.End) && MinuteAfter(end, booking.Start) {
		return true
	}

	return false
}

// FirstAvailable returns the earliest start on day's calendar day, searched from
// opening time in fixed steps, or nil if the day is closed or full. Only bookings
// starting on the same calendar day are considered.
func (e *Engine) FirstAvailable(day time.Time, service *domain.Service, venue *domain.Venue, bookings []*domain.Booking) *time.Time {
	if venue == nil || service == nil || service.LengthMinutes <= 0 {
		return nil
	}

	hours := ResolveBusinessHours(day, venue.BusinessHours)
	if !hours.Open {
		return nil
	}

	dayBookings := bookingsOnDay(day, bookings)
	length := service.Length()

	// Цикл конечен: курсор растет на постоянный шаг, а интервал работы ограничен
	for cursor := hours.Opening; ; cursor = cursor.Add(e.step) {
		if MinuteAfter(cursor.Add(length), hours.Closing) {
			return nil
		}
		if !e.IsCollision(cursor, service, venue, dayBookings) {
			found := cursor
			return &found
		}
	}
}

// AvailableStarts returns every grid start of day's calendar day at which the
// service does not collide, in ascending order. The first element, if any,
// equals FirstAvailable.
func (e *Engine) AvailableStarts(day time.Time, service *domain.Service, venue *domain.Venue, bookings []*domain.Booking) []time.Time {
	starts := make([]time.Time, 0)
	if venue == nil || service == nil || service.LengthMinutes <= 0 {
		return starts
	}

	hours := ResolveBusinessHours(day, venue.BusinessHours)
	if !hours.Open {
		return starts
	}

	dayBookings := bookingsOnDay(day, bookings)
	length := service.Length()

	for cursor := hours.Opening; !MinuteAfter(cursor.Add(length), hours.Closing); cursor = cursor.Add(e.step) {
		if !e.IsCollision(cursor, service, venue, dayBookings) {
			starts = append(starts, cursor)
		}
	}

	return starts
}

// IsDayBookable reports whether at least one start exists on day's calendar day
func (e *Engine) IsDayBookable(day time.Time, service *domain.Service, venue *domain.Venue, bookings []*domain.Booking) bool {
	return e.FirstAvailable(day, service, venue, bookings) != nil
}

// Snap moves a user-chosen candidate to a legal start on the same day:
//   - before opening, after closing or colliding: the first available start of the day;
//   - otherwise the candidate itself.
//
// When the day is full an after-closing candidate is reported as the latest
// start that still ends at closing time, with ok false.
//
// ok is false when the day is closed or the resulting start still collides.
func (e *Engine) Snap(candidate time.Time, service *domain.Service, venue *domain.Venue, bookings []*domain.Booking) (start time.Time, ok bool) {
	if venue == nil || service == nil || service.LengthMinutes <= 0 {
		return candidate, false
	}

	hours := ResolveBusinessHours(candidate, venue.BusinessHours)
	if !hours.Open {
		return candidate, false
	}

	dayBookings := bookingsOnDay(candidate, bookings)
	start = candidate

	if MinuteBefore(candidate, hours.Opening) || e.IsCollision(candidate, service, venue, dayBookings) {
		if first := e.FirstAvailable(candidate, service, venue, dayBookings); first != nil {
			return *first, true
		}
	}

	if MinuteAfter(candidate, hours.Closing) {
		start = hours.Closing.Add(-service.Length())
	}

	return start, !e.IsCollision(start, service, venue, dayBookings)
}

// bookingsOnDay оставляет бронирования, начинающиеся в тот же календарный день
func bookingsOnDay(day time.Time, bookings []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking != nil && sameDay(day, booking.Start) {
			result = append(result, booking)
		}
	}
	return result
}
