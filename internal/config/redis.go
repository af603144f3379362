package config

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedis connects to Redis for analysis-result caching.
// Returns nil when REDIS_URL is not set; callers treat a nil client as
// "caching disabled" rather than an error.
func NewRedis(cfg *Config) *redis.Client {
	if cfg.RedisURL == "" {
		log.Println("Redis not configured, analysis caching disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("Invalid REDIS_URL, analysis caching disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable, analysis caching disabled: %v", err)
		return nil
	}

	log.Println("Redis connection established")
	return client
}
