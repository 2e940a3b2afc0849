package service

import (
	"context"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/ports"
)

// TopicService is the permission topic registry, backed by the generic
// topic repository.
type TopicService struct {
	topics ports.Repository[domain.Topic]
}

func NewTopicService(topics ports.Repository[domain.Topic]) *TopicService {
	return &TopicService{topics: topics}
}

// FindByCapability returns a topic with the given capability enabled.
// When several topics enable the same capability the store's natural order
// decides: the first seeded topic wins. domain.ErrNotFound when none has it.
func (s *TopicService) FindByCapability(ctx context.Context, cap domain.Capability) (*domain.Topic, error) {
	return s.topics.FindOne(ctx, ports.Filter{"permission." + string(cap): true})
}
