package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/disruptive-studio/content-platform/internal/api/metrics"
	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/ports"
)

// TopicCache is a read-through Redis cache in front of a topic registry.
// Topics are seeded once and read-only at runtime, so a short TTL is only a
// guard against re-seeding. Cache failures fall through to the registry.
// Key format: topic:capability:<capability>
type TopicCache struct {
	client *redis.Client
	next   ports.TopicRegistry
	ttl    time.Duration
	log    zerolog.Logger
}

// NewTopicCache wraps next with a Redis cache using the TTL from cfg.
func NewTopicCache(client *redis.Client, next ports.TopicRegistry, cfg Config, log zerolog.Logger) *TopicCache {
	return &TopicCache{client: client, next: next, ttl: cfg.topicTTL(), log: log}
}

// FindByCapability serves the lookup from Redis when possible, falling back
// to the underlying registry and caching the result.
func (c *TopicCache) FindByCapability(ctx context.Context, cap domain.Capability) (*domain.Topic, error) {
	key := c.key(cap)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var topic domain.Topic
		if jsonErr := json.Unmarshal(data, &topic); jsonErr == nil {
			metrics.TopicCacheTotal.WithLabelValues("hit").Inc()
			return &topic, nil
		}
		c.log.Warn().Str("key", key).Msg("corrupt cached topic, refetching")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("topic cache read failed")
	}

	metrics.TopicCacheTotal.WithLabelValues("miss").Inc()
	topic, err := c.next.FindByCapability(ctx, cap)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(topic); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			c.log.Warn().Err(setErr).Str("key", key).Msg("topic cache write failed")
		}
	}
	return topic, nil
}

func (c *TopicCache) key(cap domain.Capability) string {
	return "topic:capability:" + string(cap)
}
