package ports

import (
	"context"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
)

// ContentService exposes CRUD over content records.
type ContentService interface {
	Create(ctx context.Context, content *domain.Content) (*domain.Content, error)
	Find(ctx context.Context, filter Filter) ([]*domain.Content, error)
	FindByID(ctx context.Context, id string) (*domain.Content, error)
	Update(ctx context.Context, id string, patch Filter) (*domain.Content, error)
	Delete(ctx context.Context, id string) error
}
