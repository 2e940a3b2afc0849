package ports

import (
	"context"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
)

// TopicRegistry looks up permission topics by capability flag.
type TopicRegistry interface {
	// FindByCapability returns a topic with the given capability enabled,
	// or domain.ErrNotFound when no topic has it.
	FindByCapability(ctx context.Context, cap domain.Capability) (*domain.Topic, error)
}
