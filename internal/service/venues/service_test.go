package venues

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	venueRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/venue"
	"github.com/m04kA/SMC-SalonBooking/internal/service/venues/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeRepo struct {
	venues map[int64]*domain.Venue
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	return v, nil
}

func (f *fakeRepo) UpdateBusinessHours(_ context.Context, id int64, hours domain.WeeklyBusinessHours) error {
	v, ok := f.venues[id]
	if !ok {
		return venueRepo.ErrVenueNotFound
	}
	v.BusinessHours = hours
	return nil
}

func interval(oh, om, ch, cm int) *domain.BusinessHoursInterval {
	return &domain.BusinessHoursInterval{
		OpeningTime: domain.ClockTime{Hour: oh, Minute: om},
		ClosingTime: domain.ClockTime{Hour: ch, Minute: cm},
	}
}

func newService() *Service {
	repo := &fakeRepo{venues: map[int64]*domain.Venue{
		1: {ID: 1, Name: "Salon", BusinessHours: domain.WeeklyBusinessHours{domain.Monday: interval(9, 0, 17, 0)}},
	}}
	return NewService(repo, logger.Nop())
}

func TestService_Get(t *testing.T) {
	svc := newService()

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "UTC", got.Timezone)
	assert.Len(t, got.BusinessHours, 7)
	assert.NotNil(t, got.BusinessHours["monday"])
	assert.Nil(t, got.BusinessHours["sunday"])

	_, err = svc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestService_UpdateBusinessHours(t *testing.T) {
	svc := newService()

	got, err := svc.UpdateBusinessHours(context.Background(), 1, &models.UpdateBusinessHoursRequest{
		BusinessHours: map[string]*domain.BusinessHoursInterval{
			"saturday": interval(10, 0, 14, 30),
			"monday":   nil,
		},
	})
	require.NoError(t, err)
	assert.Nil(t, got.BusinessHours["monday"])
	assert.Equal(t, 30, got.BusinessHours["saturday"].ClosingTime.Minute)

	_, err = svc.UpdateBusinessHours(context.Background(), 2, &models.UpdateBusinessHoursRequest{})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestToWeeklyBusinessHours_Validation(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]*domain.BusinessHoursInterval
	}{
		{"unknown day", map[string]*domain.BusinessHoursInterval{"funday": interval(9, 0, 17, 0)}},
		{"capitalized day", map[string]*domain.BusinessHoursInterval{"Monday": interval(9, 0, 17, 0)}},
		{"hour out of range", map[string]*domain.BusinessHoursInterval{"monday": interval(9, 0, 24, 0)}},
		{"minute out of range", map[string]*domain.BusinessHoursInterval{"monday": interval(9, 60, 17, 0)}},
		{"closing equals opening", map[string]*domain.BusinessHoursInterval{"monday": interval(9, 0, 9, 0)}},
		{"overnight", map[string]*domain.BusinessHoursInterval{"friday": interval(22, 0, 2, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toWeeklyBusinessHours(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidBusinessHours)
		})
	}

	hours, err := toWeeklyBusinessHours(map[string]*domain.BusinessHoursInterval{"sunday": nil, "monday": interval(0, 0, 23, 59)})
	require.NoError(t, err)
	assert.Len(t, hours, 1)
}
