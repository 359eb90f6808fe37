package venue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	cacheName = "venue"
	keyPrefix = "venue:"
)

// CachedRepository read-through кеш площадок в Redis поверх репозитория.
// Ошибки Redis не ломают чтение: запрос уходит в репозиторий.
type CachedRepository struct {
	repo    Repository
	client  *redis.Client
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// NewCachedRepository создает кеширующий репозиторий. metrics может быть nil.
func NewCachedRepository(repo Repository, client *redis.Client, ttl time.Duration, metrics Metrics, logger Logger) *CachedRepository {
	return &CachedRepository{
		repo:    repo,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// GetByID возвращает площадку из кеша, при промахе читает репозиторий и кладет результат в кеш
func (c *CachedRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	cached, err := c.get(ctx, id)
	switch {
	case err != nil:
		c.observe("error")
		c.logger.Warn("VenueCache: get venue id=%d failed, falling back to storage: %v", id, err)
	case cached != nil:
		c.observe("hit")
		return cached, nil
	default:
		c.observe("miss")
	}

	venue, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, venue); err != nil {
		c.logger.Warn("VenueCache: set venue id=%d failed: %v", id, err)
	}

	return venue, nil
}

// UpdateBusinessHours обновляет расписание в репозитории и сбрасывает запись кеша
// до записи и после неё. Ошибка второго удаления только логируется.
func (c *CachedRepository) UpdateBusinessHours(ctx context.Context, id int64, hours domain.WeeklyBusinessHours) error {
	if err := c.Invalidate(ctx, id); err != nil {
		return err
	}

	if err := c.repo.UpdateBusinessHours(ctx, id, hours); err != nil {
		return err
	}

	if err := c.Invalidate(ctx, id); err != nil {
		c.logger.Warn("VenueCache: venue id=%d updated, stale entry may live up to %s: %v", id, c.ttl, err)
	}
	return nil
}

// Invalidate удаляет площадку из кеша
func (c *CachedRepository) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		c.logger.Error("VenueCache: invalidate venue id=%d failed: %v", id, err)
		return fmt.Errorf("delete venue from redis: %w", err)
	}
	return nil
}

func (c *CachedRepository) get(ctx context.Context, id int64) (*domain.Venue, error) {
	val, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get venue from redis: %w", err)
	}

	var venue domain.Venue
	if err := json.Unmarshal(val, &venue); err != nil {
		return nil, fmt.Errorf("unmarshal venue: %w", err)
	}
	return &venue, nil
}

func (c *CachedRepository) set(ctx context.Context, venue *domain.Venue) error {
	data, err := json.Marshal(venue)
	if err != nil {
		return fmt.Errorf("marshal venue: %w", err)
	}
	if err := c.client.Set(ctx, key(venue.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set venue in redis: %w", err)
	}
	return nil
}

func (c *CachedRepository) observe(result string) {
	if c.metrics != nil {
		c.metrics.IncCache(cacheName, result)
	}
}

func key(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}
