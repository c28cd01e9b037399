package redis

import (
	"context"
	"net"
	"time"

	"tavola/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// New connects to the primary Redis. It returns nil when Redis is not
// enabled so the storage and rate limiter can run without it.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary
	if !primary.Enable {
		log.Info().Msg("Redis disabled, skipping connection")

		return nil
	}

	addr := net.JoinHostPort(primary.Host, primary.Port)
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     addr,
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("Failed to connect to Redis")
	}

	log.Info().Str("addr", addr).Int("db", primary.DB).Msg("Connected to Redis")

	return client
}
