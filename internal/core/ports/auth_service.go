package ports

import (
	"context"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
)

// RegisterInput carries the candidate account data for registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// AuthService defines the identity lifecycle:
// unregistered → registered → authenticated.
type AuthService interface {
	// Register creates an account with a hashed password and a default
	// permission topic resolved from the role. No token is issued.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login resolves identifier as a username or an email, verifies the
	// password, and returns the updated user together with a signed session
	// token already persisted on the record.
	Login(ctx context.Context, identifier, password string) (*domain.User, string, error)
}
