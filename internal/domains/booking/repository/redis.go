package repository

import (
	"context"
	"errors"
	"fmt"

	"tavola/infras/otel"
	"tavola/internal/domains/booking/model"
	"tavola/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
)

// Redis stores the snapshot as a single JSON string under the namespace
// key, with no expiry.
type Redis struct {
	client *goRedis.Client
	key    string
	otel   otel.Otel
}

func NewRedis(client *goRedis.Client, key string, otl otel.Otel) *Redis {
	return &Redis{
		client: client,
		key:    key,
		otel:   otl,
	}
}

func (r *Redis) Load(ctx context.Context) (snapshot model.Snapshot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".redis.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("cache.key", r.key)

	raw, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, goRedis.Nil) {
		return decodeSnapshot(nil)
	}

	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to get %s: %w", r.key, err)
	}

	return decodeSnapshot([]byte(raw))
}

func (r *Redis) Save(ctx context.Context, snapshot model.Snapshot) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".redis.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("cache.key", r.key)

	raw, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	if err = r.client.Set(ctx, r.key, string(raw), 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", r.key, err)
	}

	return nil
}
