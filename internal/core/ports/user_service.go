package ports

import (
	"context"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
)

// UserService exposes read access to user records.
type UserService interface {
	Find(ctx context.Context, filter Filter) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
