package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a cache client, or nil when redis is not
// configured or unreachable. Callers treat a nil client as "no cache".
func ConnectRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("Redis not configured, running without cache")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		return nil
	}

	log.Println("Redis connected")
	return client
}
