package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second
	defaultTopicTTL    = 5 * time.Minute
)

// Config captures the settings of the platform's Redis instance. Redis has a
// single job here, caching permission topics in front of the document store,
// so the cache TTL lives with the connection settings.
type Config struct {
	Addr string
	DB   int
	// TopicCacheTTL bounds how long a cached topic is served before the
	// underlying registry is consulted again. Zero selects the five minute
	// default.
	TopicCacheTTL time.Duration
	// DialTimeout bounds the startup connectivity check.
	DialTimeout time.Duration
}

func (c Config) topicTTL() time.Duration {
	if c.TopicCacheTTL <= 0 {
		return defaultTopicTTL
	}
	return c.TopicCacheTTL
}

func (c Config) dialTimeout() time.Duration {
	if c.DialTimeout <= 0 {
		return defaultDialTimeout
	}
	return c.DialTimeout
}

// Connect initialises the Redis client backing the topic cache and validates
// connectivity with a ping. The cache tolerates read and write failures at
// runtime, so startup is the only moment connectivity is enforced.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.dialTimeout())
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
