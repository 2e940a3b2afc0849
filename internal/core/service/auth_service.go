package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/disruptive-studio/content-platform/internal/api/metrics"
	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/ports"
)

// emailPattern is the shape check used to classify a login identifier as an
// email rather than a username. Strict address validation belongs to the
// HTTP layer.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AuthService implements registration and login on top of the generic user
// repository and the topic registry.
type AuthService struct {
	users     ports.Repository[domain.User]
	topics    ports.TopicRegistry
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService builds the identity service. If tokenTTL <= 0 the session
// validity window defaults to 672 hours (28 days).
func NewAuthService(users ports.Repository[domain.User], topics ports.TopicRegistry, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 672 * time.Hour
	}
	return &AuthService{users: users, topics: topics, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register hashes the candidate's password, resolves a default permission
// topic from the role, and persists the account. No token is issued here.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, fmt.Errorf("%w: username, email, password and role are required", domain.ErrInvalidInput)
	}
	if strings.ContainsAny(input.Username, " \t\n") {
		return nil, fmt.Errorf("%w: username must not contain whitespace", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        strings.ToLower(input.Email),
		Role:         input.Role,
		PasswordHash: string(hash),
	}

	// A role with no matching topic is tolerated: the account is created
	// with the topic reference unset.
	topic, err := s.topics.FindByCapability(ctx, input.Role.DefaultCapability())
	switch {
	case err == nil:
		user.TopicID = topic.ID
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("resolve topic for role %q: %w", input.Role, err)
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(created.Role)).Inc()
	return created, nil
}

// Login resolves identifier as an email or a username, verifies the
// password, and persists a freshly signed session token on the record. The
// token is only reported after the update succeeds.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	if identifier == "" || password == "" {
		return nil, "", fmt.Errorf("%w: identifier and password are required", domain.ErrInvalidInput)
	}

	filter := ports.Filter{"username": identifier}
	if emailPattern.MatchString(identifier) {
		filter = ports.Filter{"email": strings.ToLower(identifier)}
	}

	user, err := s.users.FindOne(ctx, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			return nil, "", domain.ErrUserNotFound
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	updated, err := s.users.Update(ctx, user.ID.Hex(), ports.Filter{"token": token})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, "", fmt.Errorf("persist token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return updated, token, nil
}

func (s *AuthService) signToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID.Hex(),
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
