package cache

import (
	"context"
	"fmt"
	"time"

	"tavola/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	otelCountAttribute    = "cache.count"
)

// RedisCache holds short-lived counters shared between instances.
type RedisCache interface {
	// Increment bumps the counter at key and returns the new value. The
	// window starts with the first hit and is not extended by later ones.
	Increment(ctx context.Context, key string, window time.Duration) (count int64, err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

// NewRedisCache returns nil when Redis is disabled; callers treat a nil
// cache as "no caching".
func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	if client == nil {
		return nil
	}

	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment implements RedisCache.
func (cache *redisCache) Increment(ctx context.Context, key string, window time.Duration) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	count, err = cache.client.Incr(ctx, key).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}

	scope.SetAttribute(otelCountAttribute, count)

	if count == 1 {
		if err = cache.client.Expire(ctx, key, window).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to set counter window")

			return count, fmt.Errorf("failed to expire %s: %w", key, err)
		}
	}

	return count, nil
}
