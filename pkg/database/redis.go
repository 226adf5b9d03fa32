package database

import (
	"context"
	"fmt"
	"time"

	"github.com/davidmoltin/command-center/pkg/config"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the Redis connection used for stream fan-out
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient connects to Redis. It returns (nil, nil) when Redis is disabled.
func NewRedisClient(cfg *config.Config, log *logger.Logger) (*RedisClient, error) {
	if !cfg.Redis.Enabled {
		log.Info("Redis disabled, websocket events stay on this instance")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info("Redis connection established",
		logger.String("host", cfg.Redis.Host),
		logger.Int("port", cfg.Redis.Port),
		logger.Int("db", cfg.Redis.DB),
	)

	return &RedisClient{Client: client}, nil
}

// Raw returns the underlying client, or nil for a nil receiver
func (r *RedisClient) Raw() *redis.Client {
	if r == nil {
		return nil
	}
	return r.Client
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	if r == nil {
		return nil
	}
	return r.Client.Close()
}

// HealthCheck performs a health check on Redis
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}
