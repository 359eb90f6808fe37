package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownTimezone возвращается, когда Timezone площадки не найден в базе IANA
var ErrUnknownTimezone = errors.New("domain: unknown venue timezone")

// Weekday is a business-hours key. Keys are Monday-first.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists business-hours keys in ISO-8601 order (Monday=1 ... Sunday=7).
// Month-grid labels and validation iterate this slice.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf maps Go's Sunday=0 numbering into the Monday-first key space.
// This is the only place where time.Weekday is converted.
func WeekdayOf(t time.Time) Weekday {
	return Weekdays[(int(t.Weekday())+6)%7]
}

// ISONumber returns 1 for Monday ... 7 for Sunday, 0 for an unknown key
func (d Weekday) ISONumber() int {
	for i, w := range Weekdays {
		if w == d {
			return i + 1
		}
	}
	return 0
}

// IsValid returns true for one of the seven known keys
func (d Weekday) IsValid() bool {
	return d.ISONumber() != 0
}

// ClockTime is a wall-clock time of day
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// IsValid checks hour 0-23 and minute 0-59
func (c ClockTime) IsValid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

// MinutesOfDay returns minutes since midnight
func (c ClockTime) MinutesOfDay() int {
	return c.Hour*60 + c.Minute
}

// On returns the instant at this clock time on the calendar day of date, in date's location
func (c ClockTime) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, date.Location())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// BusinessHoursInterval opening and closing time of one day.
// Closing is strictly after opening; overnight hours are not supported.
type BusinessHoursInterval struct {
	OpeningTime ClockTime `json:"openingTime"`
	ClosingTime ClockTime `json:"closingTime"`
}

// WeeklyBusinessHours maps a weekday to its hours. A missing key or nil value means closed.
type WeeklyBusinessHours map[Weekday]*BusinessHoursInterval

// Value implements driver.Valuer (JSONB column)
func (h WeeklyBusinessHours) Value() (driver.Value, error) {
	if h == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner (JSONB column)
func (h *WeeklyBusinessHours) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*h = WeeklyBusinessHours{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported business hours type %T", src)
	}

	hours := WeeklyBusinessHours{}
	if err := json.Unmarshal(data, &hours); err != nil {
		return err
	}
	*h = hours
	return nil
}

// Venue represents a salon location
type Venue struct {
	ID            int64
	Name          string
	StringAddress string
	Region        string
	District      string
	Timezone      string // IANA, например "Europe/Prague"
	BusinessHours WeeklyBusinessHours

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoadLocation returns the venue time zone, UTC when unset.
// An unknown zone yields UTC together with ErrUnknownTimezone.
func (v *Venue) LoadLocation() (*time.Location, error) {
	if v.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("%w: %q: %v", ErrUnknownTimezone, v.Timezone, err)
	}
	return loc, nil
}

// Location returns the venue time zone, UTC when unset or unknown
func (v *Venue) Location() *time.Location {
	loc, _ := v.LoadLocation()
	return loc
}

// IsOpenOn returns true if the venue has hours for the weekday of date
func (v *Venue) IsOpenOn(date time.Time) bool {
	return v.BusinessHours[WeekdayOf(date)] != nil
}
