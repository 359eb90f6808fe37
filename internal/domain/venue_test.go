package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01 был понедельником
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	expected := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	for i, want := range expected {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, want, WeekdayOf(day), "day %s", day.Format(DateFormat))
		assert.Equal(t, i+1, WeekdayOf(day).ISONumber())
	}
}

func TestWeekdayOf_UsesDateLocation(t *testing.T) {
	prague, err := time.LoadLocation("Europe/Prague")
	require.NoError(t, err)

	// 23:30 UTC в воскресенье - это уже понедельник в Праге
	utc := time.Date(2024, 1, 7, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, Sunday, WeekdayOf(utc))
	assert.Equal(t, Monday, WeekdayOf(utc.In(prague)))
}

func TestWeekday_IsValid(t *testing.T) {
	assert.True(t, Sunday.IsValid())
	assert.False(t, Weekday("holiday").IsValid())
	assert.Equal(t, 0, Weekday("").ISONumber())
}

func TestClockTime(t *testing.T) {
	assert.True(t, ClockTime{Hour: 23, Minute: 59}.IsValid())
	assert.False(t, ClockTime{Hour: 24, Minute: 0}.IsValid())
	assert.False(t, ClockTime{Hour: 9, Minute: 60}.IsValid())
	assert.Equal(t, 570, ClockTime{Hour: 9, Minute: 30}.MinutesOfDay())
	assert.Equal(t, "09:05", ClockTime{Hour: 9, Minute: 5}.String())

	date := time.Date(2024, 3, 5, 17, 42, 13, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC), ClockTime{Hour: 9, Minute: 30}.On(date))
}

func TestWeeklyBusinessHours_ScanValue(t *testing.T) {
	hours := WeeklyBusinessHours{
		Monday: {OpeningTime: ClockTime{Hour: 9}, ClosingTime: ClockTime{Hour: 17}},
		Sunday: nil,
	}

	raw, err := hours.Value()
	require.NoError(t, err)

	var scanned WeeklyBusinessHours
	require.NoError(t, scanned.Scan(raw))
	require.NotNil(t, scanned[Monday])
	assert.Equal(t, 17, scanned[Monday].ClosingTime.Hour)
	assert.Nil(t, scanned[Sunday])
	assert.Nil(t, scanned[Tuesday])

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(42))
}

func TestVenue_Location(t *testing.T) {
	v := &Venue{}
	assert.Equal(t, time.UTC, v.Location())

	v.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, v.Location())

	v.Timezone = "Europe/Prague"
	assert.Equal(t, "Europe/Prague", v.Location().String())
}

func TestVenue_LoadLocation(t *testing.T) {
	v := &Venue{}
	loc, err := v.LoadLocation()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	v.Timezone = "Not/AZone"
	loc, err = v.LoadLocation()
	assert.ErrorIs(t, err, ErrUnknownTimezone)
	assert.Equal(t, time.UTC, loc)
}

func TestVenue_IsOpenOn(t *testing.T) {
	v := &Venue{BusinessHours: WeeklyBusinessHours{
		Monday: {OpeningTime: ClockTime{Hour: 9}, ClosingTime: ClockTime{Hour: 17}},
	}}

	assert.True(t, v.IsOpenOn(time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)))
	assert.False(t, v.IsOpenOn(time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)))
}
