package venue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

var errNotFound = errors.New("not found")

type fakeRepo struct {
	venues   map[int64]*domain.Venue
	gets     int
	updates  int
	onUpdate func()
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	f.gets++
	v, ok := f.venues[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *v
	return &copied, nil
}

func (f *fakeRepo) UpdateBusinessHours(_ context.Context, id int64, hours domain.WeeklyBusinessHours) error {
	f.updates++
	if f.onUpdate != nil {
		f.onUpdate()
	}
	v, ok := f.venues[id]
	if !ok {
		return errNotFound
	}
	v.BusinessHours = hours
	return nil
}

type countingMetrics map[string]int

func (m countingMetrics) IncCache(_, result string) { m[result]++ }

func setup(t *testing.T) (*CachedRepository, *fakeRepo, *miniredis.Miniredis, countingMetrics) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &fakeRepo{venues: map[int64]*domain.Venue{
		1: {
			ID:       1,
			Name:     "Salon Praha",
			Timezone: "Europe/Prague",
			BusinessHours: domain.WeeklyBusinessHours{
				domain.Monday: {
					OpeningTime: domain.ClockTime{Hour: 9},
					ClosingTime: domain.ClockTime{Hour: 17},
				},
			},
		},
	}}
	m := countingMetrics{}

	return NewCachedRepository(repo, client, time.Minute, m, logger.Nop()), repo, s, m
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	cache, repo, s, m := setup(t)
	ctx := context.Background()

	first, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Salon Praha", first.Name)
	assert.True(t, s.Exists("venue:1"))

	second, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.BusinessHours[domain.Monday], second.BusinessHours[domain.Monday])
	assert.Equal(t, "Europe/Prague", second.Timezone)

	assert.Equal(t, 1, repo.gets)
	assert.Equal(t, 1, m["miss"])
	assert.Equal(t, 1, m["hit"])
}

func TestCachedRepository_TTL(t *testing.T) {
	cache, repo, s, _ := setup(t)
	ctx := context.Background()

	_, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)

	s.FastForward(2 * time.Minute)

	_, err = cache.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.gets)
}

func TestCachedRepository_NotFoundIsNotCached(t *testing.T) {
	cache, _, s, _ := setup(t)

	_, err := cache.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, errNotFound)
	assert.False(t, s.Exists("venue:42"))
}

func TestCachedRepository_UpdateInvalidates(t *testing.T) {
	cache, repo, s, _ := setup(t)
	ctx := context.Background()

	_, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)

	hours := domain.WeeklyBusinessHours{
		domain.Sunday: {OpeningTime: domain.ClockTime{Hour: 10}, ClosingTime: domain.ClockTime{Hour: 14}},
	}
	require.NoError(t, cache.UpdateBusinessHours(ctx, 1, hours))
	assert.False(t, s.Exists("venue:1"))

	updated, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, updated.BusinessHours[domain.Sunday])
	assert.Nil(t, updated.BusinessHours[domain.Monday])
	assert.Equal(t, 1, repo.updates)
}

func TestCachedRepository_UpdateWithRedisErrorKeepsStorageUnchanged(t *testing.T) {
	cache, repo, s, _ := setup(t)
	ctx := context.Background()

	_, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)

	s.SetError("LOADING")
	hours := domain.WeeklyBusinessHours{
		domain.Sunday: {OpeningTime: domain.ClockTime{Hour: 10}, ClosingTime: domain.ClockTime{Hour: 14}},
	}
	err = cache.UpdateBusinessHours(ctx, 1, hours)
	require.Error(t, err)
	assert.Equal(t, 0, repo.updates)
	assert.NotNil(t, repo.venues[1].BusinessHours[domain.Monday])

	s.SetError("")
	cached, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, cached.BusinessHours[domain.Monday])
	assert.Nil(t, cached.BusinessHours[domain.Sunday])
}

func TestCachedRepository_UpdateSucceedsWhenFinalInvalidateFails(t *testing.T) {
	cache, repo, s, _ := setup(t)
	ctx := context.Background()

	_, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)

	repo.onUpdate = func() { s.SetError("LOADING") }
	hours := domain.WeeklyBusinessHours{
		domain.Sunday: {OpeningTime: domain.ClockTime{Hour: 10}, ClosingTime: domain.ClockTime{Hour: 14}},
	}
	require.NoError(t, cache.UpdateBusinessHours(ctx, 1, hours))
	assert.Equal(t, 1, repo.updates)

	s.SetError("")
	assert.False(t, s.Exists("venue:1"))

	updated, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, updated.BusinessHours[domain.Monday])
	assert.NotNil(t, updated.BusinessHours[domain.Sunday])
}

func TestCachedRepository_RedisDownFallsBack(t *testing.T) {
	cache, repo, s, m := setup(t)
	s.Close()

	venue, err := cache.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), venue.ID)
	assert.Equal(t, 1, repo.gets)
	assert.Equal(t, 1, m["error"])
}

func TestCachedRepository_CorruptEntry(t *testing.T) {
	cache, repo, s, m := setup(t)
	require.NoError(t, s.Set("venue:1", "{not json"))

	venue, err := cache.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Salon Praha", venue.Name)
	assert.Equal(t, 1, repo.gets)
	assert.Equal(t, 1, m["error"])
}
