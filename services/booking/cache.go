package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"medicare/models"
	"medicare/utils"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"
)

// AvailabilityCache stores computed views per appointment date.
//
// Every Invalidate bumps a per-date generation. A view computed under an
// older generation is refused by Set, so a resolve that read the ledger
// before a concurrent admit cannot repopulate the cache with its stale view.
type AvailabilityCache interface {
	Get(ctx context.Context, date string) ([]models.ServiceAvailability, bool, error)
	Generation(ctx context.Context, date string) (int64, error)
	// Set stores view only if the generation of date is still gen. It
	// reports whether the view was stored.
	Set(ctx context.Context, date string, gen int64, view []models.ServiceAvailability) (bool, error)
	Invalidate(ctx context.Context, date string) error
}

// generationTTL bounds how long an untouched date keeps its counter.
const generationTTL = 24 * time.Hour

// setIfGeneration writes KEYS[1] when KEYS[2] (missing counts as 0) equals ARGV[1].
var setIfGeneration = redis.NewScript(`
local cur = redis.call('GET', KEYS[2])
if not cur then cur = '0' end
if cur ~= ARGV[1] then return 0 end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(date string) string {
	return fmt.Sprintf("%s%s", utils.AvailabilityCachePrefix, date)
}

func generationKey(date string) string {
	return fmt.Sprintf("%sgen:%s", utils.AvailabilityCachePrefix, date)
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, date string) ([]models.ServiceAvailability, bool, error) {
	raw, err := c.client.Get(ctx, availabilityKey(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var view []models.ServiceAvailability
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false, fmt.Errorf("corrupt availability cache entry for %s: %w", date, err)
	}
	return view, true, nil
}

func (c *RedisAvailabilityCache) Generation(ctx context.Context, date string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(date)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, date string, gen int64, view []models.ServiceAvailability) (bool, error) {
	data, err := json.Marshal(view)
	if err != nil {
		return false, err
	}
	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{availabilityKey(date), generationKey(date)},
		strconv.FormatInt(gen, 10), data, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// Invalidate bumps the generation and drops the view in one transaction.
func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, date string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(date))
		pipe.Expire(ctx, generationKey(date), generationTTL)
		pipe.Del(ctx, availabilityKey(date))
		return nil
	})
	return err
}
