package get_first_available

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule/scheduletest"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

func monday(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func newUseCase(t *testing.T, loader ScheduleLoader) *UseCase {
	t.Helper()
	engine, err := availability.NewEngine(availability.Config{StepMinutes: 15})
	require.NoError(t, err)
	return NewUseCase(loader, engine, scheduletest.NopMetrics{}, logger.Nop())
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		length   int
		bookings []*domain.Booking
		open     bool
		want     *Slot
	}{
		{
			name:   "empty day starts at opening",
			date:   monday(0, 0),
			length: 30,
			open:   true,
			want:   &Slot{Start: monday(9, 0), End: monday(9, 30)},
		},
		{
			name:   "dense morning",
			date:   monday(0, 0),
			length: 60,
			bookings: []*domain.Booking{
				scheduletest.Booking(1, monday(9, 0), monday(9, 30)),
				scheduletest.Booking(2, monday(9, 30), monday(10, 0)),
			},
			open: true,
			want: &Slot{Start: monday(10, 0), End: monday(11, 0)},
		},
		{
			name:     "full day",
			date:     monday(0, 0),
			length:   60,
			bookings: []*domain.Booking{scheduletest.Booking(1, monday(9, 0), monday(12, 0))},
			open:     true,
		},
		{
			name:   "service longer than the day",
			date:   monday(0, 0),
			length: 240,
			open:   true,
		},
		{
			name:   "closed day",
			date:   monday(0, 0).AddDate(0, 0, 6),
			length: 30,
			open:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t, &scheduletest.Loader{
				Venue:    scheduletest.WeekdayVenue(9, 12),
				Service:  scheduletest.Service(tt.length),
				Bookings: tt.bookings,
			})

			resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, StaffID: 7, ServiceID: 10, Date: tt.date})
			require.NoError(t, err)
			assert.Equal(t, tt.open, resp.Open)
			assert.Equal(t, tt.want, resp.Slot)
		})
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := newUseCase(t, &scheduletest.Loader{Err: schedule.ErrVenueNotFound})

	_, err := uc.Execute(context.Background(), &Request{VenueID: 1, StaffID: 0, ServiceID: 10, Date: monday(0, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VenueID: 1, StaffID: 7, ServiceID: 10, Date: monday(0, 0)})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
