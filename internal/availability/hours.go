package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// DayHours is the resolved business hours of one calendar day.
// Open is false when the venue is closed that day; Opening and Closing are zero then.
type DayHours struct {
	Open    bool
	Opening time.Time
	Closing time.Time
}

// OpenMinutes returns the length of the open interval in whole minutes
func (h DayHours) OpenMinutes() int {
	if !h.Open {
		return 0
	}
	return int(h.Closing.Sub(h.Opening) / time.Minute)
}

// ResolveBusinessHours returns the opening and closing instants of date's calendar day.
// Only the weekday and the calendar day of date are used; instants are built in date's location.
func ResolveBusinessHours(date time.Time, hours domain.WeeklyBusinessHours) DayHours {
	interval := hours[domain.WeekdayOf(date)]
	if interval == nil {
		return DayHours{}
	}

	return DayHours{
		Open:    true,
		Opening: interval.OpeningTime.On(date),
		Closing: interval.ClosingTime.On(date),
	}
}
