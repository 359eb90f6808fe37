package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule/scheduletest"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeRepo struct {
	created []*domain.Booking
	err     error
}

func (r *fakeRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b.ID = int64(len(r.created) + 100)
	b.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	r.created = append(r.created, b)
	return b, nil
}

type fakeVerifier struct{ err error }

func (v fakeVerifier) Verify(_ context.Context, _, _, _ int64) error { return v.err }

type fakeTx struct{ calls int }

func (tx *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type conflictMetrics struct{ conflicts int }

func (m *conflictMetrics) IncBookingConflict(string) { m.conflicts++ }

func monday(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

type fixture struct {
	uc      *UseCase
	repo    *fakeRepo
	loader  *scheduletest.Loader
	tx      *fakeTx
	metrics *conflictMetrics
}

func newFixture(t *testing.T, verifyErr error) *fixture {
	t.Helper()
	engine, err := availability.NewEngine(availability.Config{StepMinutes: 15})
	require.NoError(t, err)

	f := &fixture{
		repo: &fakeRepo{},
		loader: &scheduletest.Loader{
			Venue:    scheduletest.WeekdayVenue(9, 18),
			Service:  scheduletest.Service(60),
			Bookings: []*domain.Booking{scheduletest.Booking(1, monday(10, 0), monday(11, 0))},
		},
		tx:      &fakeTx{},
		metrics: &conflictMetrics{},
	}
	f.uc = NewUseCase(f.repo, f.loader, fakeVerifier{err: verifyErr}, engine, f.tx, f.metrics, logger.Nop())
	return f
}

func validRequest(start time.Time) *Request {
	return &Request{
		UserID:    42,
		VenueID:   1,
		StaffID:   7,
		ServiceID: 10,
		Start:     start,
		Customer:  domain.Customer{Name: "  Jana Novak ", Email: "jana@example.com", Phone: "+420 777 123 456"},
	}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest(monday(11, 0)))
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, monday(11, 0), resp.Start)
	assert.Equal(t, monday(12, 0), resp.End)
	assert.Equal(t, int64(42), resp.CreatedBy)
	assert.Equal(t, "Jana Novak", resp.Customer.Name)
	assert.Equal(t, 1, f.tx.calls)
	assert.Zero(t, f.metrics.conflicts)
	require.Len(t, f.repo.created, 1)
}

func TestUseCase_Execute_BackToBackChain(t *testing.T) {
	f := newFixture(t, nil)

	// Последовательные бронирования встык до конца дня
	for _, start := range []time.Time{monday(9, 0), monday(11, 0), monday(12, 0)} {
		_, err := f.uc.Execute(context.Background(), validRequest(start))
		require.NoError(t, err, "start %s", start)
		f.loader.Bookings = append(f.loader.Bookings, f.repo.created[len(f.repo.created)-1])
	}

	_, err := f.uc.Execute(context.Background(), validRequest(monday(12, 30)))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, f.metrics.conflicts)
}

func TestUseCase_Execute_VenueTimezone(t *testing.T) {
	f := newFixture(t, nil)
	f.loader.Venue.Timezone = "Europe/Prague"
	f.loader.Bookings = nil

	// 08:00 UTC - 09:00 в Праге, открытие
	resp, err := f.uc.Execute(context.Background(), validRequest(monday(8, 0)))
	require.NoError(t, err)
	assert.Equal(t, 9, resp.Start.Hour())
	assert.True(t, resp.Start.Equal(monday(8, 0)))

	// 07:30 UTC - 08:30 в Праге, до открытия
	_, err = f.uc.Execute(context.Background(), validRequest(monday(7, 30)))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(f *fixture)
		verifyErr error
		req       *Request
		wantErr   error
	}{
		{
			name:    "overlap",
			req:     validRequest(monday(10, 30)),
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "closed day",
			req:     validRequest(monday(10, 0).AddDate(0, 0, 6)),
			wantErr: ErrSlotNotAvailable,
		},
		{
			name: "empty customer name",
			req: func() *Request {
				r := validRequest(monday(12, 0))
				r.Customer.Name = "   "
				return r
			}(),
			wantErr: ErrInvalidInput,
		},
		{
			name: "customer name too long",
			req: func() *Request {
				r := validRequest(monday(12, 0))
				r.Customer.Name = strings.Repeat("a", domain.MaxCustomerNameLength+1)
				return r
			}(),
			wantErr: ErrInvalidInput,
		},
		{
			name: "bad email",
			req: func() *Request {
				r := validRequest(monday(12, 0))
				r.Customer.Email = "not-an-email"
				return r
			}(),
			wantErr: ErrInvalidInput,
		},
		{
			name: "bad phone",
			req: func() *Request {
				r := validRequest(monday(12, 0))
				r.Customer.Phone = "call me"
				return r
			}(),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no user",
			req:     func() *Request { r := validRequest(monday(12, 0)); r.UserID = 0; return r }(),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "venue not found",
			prepare: func(f *fixture) { f.loader.Err = schedule.ErrVenueNotFound },
			req:     validRequest(monday(12, 0)),
			wantErr: ErrVenueNotFound,
		},
		{
			name:      "staff at another venue",
			verifyErr: schedule.ErrStaffNotAtVenue,
			req:       validRequest(monday(12, 0)),
			wantErr:   ErrStaffNotAtVenue,
		},
		{
			name:    "storage failure",
			prepare: func(f *fixture) { f.repo.err = errors.New("connection reset") },
			req:     validRequest(monday(12, 0)),
			wantErr: ErrInternal,
		},
		{
			name:    "bookings load failure",
			prepare: func(f *fixture) { f.loader.BookingsErr = schedule.ErrInternal },
			req:     validRequest(monday(12, 0)),
			wantErr: schedule.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.verifyErr)
			if tt.prepare != nil {
				tt.prepare(f)
			}

			resp, err := f.uc.Execute(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr != ErrInternal {
				assert.Empty(t, f.repo.created)
			}
		})
	}
}
