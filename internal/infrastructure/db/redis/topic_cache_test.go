package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
)

type stubRegistry struct {
	topic *domain.Topic
	calls int
}

func (s *stubRegistry) FindByCapability(_ context.Context, _ domain.Capability) (*domain.Topic, error) {
	s.calls++
	return s.topic, nil
}

func TestNewTopicCache_TTLFromConfig(t *testing.T) {
	c := NewTopicCache(nil, nil, Config{}, zerolog.Nop())
	if c.ttl != defaultTopicTTL {
		t.Fatalf("expected default TTL %s, got %s", defaultTopicTTL, c.ttl)
	}

	c = NewTopicCache(nil, nil, Config{TopicCacheTTL: time.Minute}, zerolog.Nop())
	if c.ttl != time.Minute {
		t.Fatalf("expected configured TTL, got %s", c.ttl)
	}
}

func TestTopicCache_KeyFormat(t *testing.T) {
	c := NewTopicCache(nil, nil, Config{}, zerolog.Nop())
	if got := c.key(domain.CapabilityVideo); got != "topic:capability:video" {
		t.Fatalf("unexpected cache key %q", got)
	}
}

func TestTopicCache_FallsThroughOnCacheFailure(t *testing.T) {
	// Point the client at a closed port so every cache operation fails.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer func() { _ = client.Close() }()

	want := &domain.Topic{
		ID:         primitive.NewObjectID(),
		Name:       "Video",
		Permission: domain.Permission{Video: true},
	}
	registry := &stubRegistry{topic: want}
	c := NewTopicCache(client, registry, Config{}, zerolog.Nop())

	got, err := c.FindByCapability(context.Background(), domain.CapabilityVideo)
	if err != nil {
		t.Fatalf("cache failure must not surface: %v", err)
	}
	if got.ID != want.ID {
		t.Fatalf("expected topic %s, got %s", want.ID.Hex(), got.ID.Hex())
	}
	if registry.calls != 1 {
		t.Fatalf("expected the registry to be consulted once, got %d", registry.calls)
	}
}
