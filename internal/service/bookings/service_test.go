package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeRepo struct {
	bookings   map[int64]*domain.Booking
	lastFilter domain.StaffBookingsFilter
	err        error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByStaffWithFilter(_ context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.StaffID == filter.StaffID && !b.Start.Before(filter.Start) && b.Start.Before(filter.End) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

func newService() (*Service, *fakeRepo) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, StaffID: 7, Start: start, End: start.Add(30 * time.Minute), Customer: domain.Customer{Name: "Anna"}},
	}}
	return NewService(repo, logger.Nop()), repo
}

func TestService_GetByID(t *testing.T) {
	svc, _ := newService()

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Customer.Name)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_ListByStaff(t *testing.T) {
	svc, repo := newService()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	list, err := svc.ListByStaff(context.Background(), &models.ListStaffBookingsRequest{
		StaffID: 7, Start: day, End: day.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, int64(7), repo.lastFilter.StaffID)

	_, err = svc.ListByStaff(context.Background(), &models.ListStaffBookingsRequest{StaffID: 7, Start: day, End: day})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.ListByStaff(context.Background(), &models.ListStaffBookingsRequest{
		StaffID: 7, Start: day, End: day.AddDate(0, 3, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.ListByStaff(context.Background(), &models.ListStaffBookingsRequest{Start: day, End: day.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newService()

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.bookings)
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrBookingNotFound)

	repo.err = errors.New("db down")
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrInternal)
}
