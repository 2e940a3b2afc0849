package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/ports"
)

// ContentService exposes CRUD over content records through the generic
// repository. Payload-shape rules per content kind are out of scope here;
// the HTTP layer validates required fields.
type ContentService struct {
	contents ports.Repository[domain.Content]
}

func NewContentService(contents ports.Repository[domain.Content]) *ContentService {
	return &ContentService{contents: contents}
}

func (s *ContentService) Create(ctx context.Context, content *domain.Content) (*domain.Content, error) {
	if content.Title == "" || content.Kind == "" || content.Theme == "" {
		return nil, fmt.Errorf("%w: title, kind and theme are required", domain.ErrInvalidInput)
	}
	if content.CreatorID.IsZero() {
		return nil, fmt.Errorf("%w: creator is required", domain.ErrInvalidInput)
	}
	return s.contents.Create(ctx, content)
}

func (s *ContentService) Find(ctx context.Context, filter ports.Filter) ([]*domain.Content, error) {
	return s.contents.Find(ctx, filter)
}

func (s *ContentService) FindByID(ctx context.Context, id string) (*domain.Content, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid id", domain.ErrInvalidInput, id)
	}
	return s.contents.FindOne(ctx, ports.Filter{"_id": oid})
}

func (s *ContentService) Update(ctx context.Context, id string, patch ports.Filter) (*domain.Content, error) {
	return s.contents.Update(ctx, id, patch)
}

func (s *ContentService) Delete(ctx context.Context, id string) error {
	return s.contents.Delete(ctx, id)
}
