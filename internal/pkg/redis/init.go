package redis

import (
	"context"

	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

// InitRedis creates the shared Redis client connection.
func InitRedis(cfg config.RedisConfig) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx := context.Background()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return err
	}

	Rdb = rdb
	return nil
}
