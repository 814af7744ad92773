package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/kim0hyeon/CRUDBoard/internal/config"
)

// NewRedis connects a Redis client and verifies the connection
func NewRedis(cfg config.RedisConfig, log *zap.Logger) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Redis connection established",
		zap.String("addr", addr),
		zap.Int("db", cfg.DB),
	)
	return client, nil
}
