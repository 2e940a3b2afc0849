package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/ports"
)

// UserService exposes read access to accounts. Everything non-trivial lives
// in the generic repository; this only shapes lookups.
type UserService struct {
	users ports.Repository[domain.User]
}

func NewUserService(users ports.Repository[domain.User]) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Find(ctx context.Context, filter ports.Filter) ([]*domain.User, error) {
	return s.users.Find(ctx, filter)
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid id", domain.ErrInvalidInput, id)
	}
	return s.users.FindOne(ctx, ports.Filter{"_id": oid})
}
