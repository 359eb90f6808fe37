package venues

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// toWeeklyBusinessHours проверяет расписание и переводит его в domain
func toWeeklyBusinessHours(raw map[string]*domain.BusinessHoursInterval) (domain.WeeklyBusinessHours, error) {
	hours := make(domain.WeeklyBusinessHours, len(raw))

	for key, interval := range raw {
		day := domain.Weekday(key)
		if !day.IsValid() {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidBusinessHours, key)
		}
		if interval == nil {
			continue
		}
		if !interval.OpeningTime.IsValid() {
			return nil, fmt.Errorf("%w: %s opening time %d:%d is out of range",
				ErrInvalidBusinessHours, day, interval.OpeningTime.Hour, interval.OpeningTime.Minute)
		}
		if !interval.ClosingTime.IsValid() {
			return nil, fmt.Errorf("%w: %s closing time %d:%d is out of range",
				ErrInvalidBusinessHours, day, interval.ClosingTime.Hour, interval.ClosingTime.Minute)
		}
		if interval.ClosingTime.MinutesOfDay() <= interval.OpeningTime.MinutesOfDay() {
			return nil, fmt.Errorf("%w: %s closes at %s, not after opening at %s",
				ErrInvalidBusinessHours, day, interval.ClosingTime, interval.OpeningTime)
		}

		copied := *interval
		hours[day] = &copied
	}

	return hours, nil
}
