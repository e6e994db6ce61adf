package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gympoint/internal/shared/config"
)

// OpenRedis creates a client for cfg and verifies it with a PING.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}

	return client, nil
}
