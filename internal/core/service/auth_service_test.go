package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/ports"
)

type stubUserRepo struct {
	users     map[string]*domain.User // keyed by hex id
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrAlreadyExists
		}
	}
	stored := cloneUser(user)
	stored.ID = primitive.NewObjectID()
	r.users[stored.ID.Hex()] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) matches(u *domain.User, filter ports.Filter) bool {
	for key, want := range filter {
		switch key {
		case "_id":
			if u.ID != want {
				return false
			}
		case "username":
			if u.Username != want {
				return false
			}
		case "email":
			if u.Email != want {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (r *stubUserRepo) Find(_ context.Context, filter ports.Filter) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if r.matches(u, filter) {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindOne(_ context.Context, filter ports.Filter) (*domain.User, error) {
	for _, u := range r.users {
		if r.matches(u, filter) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.Filter) (*domain.User, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if token, ok := patch["token"].(string); ok {
		u.Token = token
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type stubTopicRegistry struct {
	topics map[domain.Capability]*domain.Topic
}

func newStubTopicRegistry() *stubTopicRegistry {
	reg := &stubTopicRegistry{topics: make(map[domain.Capability]*domain.Topic)}
	for _, cap := range []domain.Capability{domain.CapabilityImage, domain.CapabilityVideo, domain.CapabilityText} {
		reg.topics[cap] = &domain.Topic{ID: primitive.NewObjectID(), Name: string(cap)}
	}
	return reg
}

func (r *stubTopicRegistry) FindByCapability(_ context.Context, cap domain.Capability) (*domain.Topic, error) {
	topic, ok := r.topics[cap]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return topic, nil
}

func newTestAuthService(repo *stubUserRepo, registry *stubTopicRegistry) *AuthService {
	return NewAuthService(repo, registry, "secret", time.Hour)
}

func registerInput(username string) ports.RegisterInput {
	return ports.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "s3cret-pass",
		Role:     domain.RoleReader,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	registry := newStubTopicRegistry()
	svc := newTestAuthService(repo, registry)

	input := registerInput("alice")
	input.Email = "Alice@Example.COM"

	user, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == input.Password {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.Token != "" {
		t.Fatalf("no token should be issued at registration")
	}
}

func TestAuthService_Register_TopicByRole(t *testing.T) {
	registry := newStubTopicRegistry()

	cases := []struct {
		role domain.Role
		cap  domain.Capability
	}{
		{domain.RoleReader, domain.CapabilityText},
		{domain.RoleCreator, domain.CapabilityVideo},
		{domain.RoleAdmin, domain.CapabilityImage},
		{domain.Role("ghost"), domain.CapabilityText}, // fallback
	}

	for _, tc := range cases {
		repo := newStubUserRepo()
		svc := newTestAuthService(repo, registry)

		input := registerInput("user-" + string(tc.role))
		input.Role = tc.role

		user, err := svc.Register(context.Background(), input)
		if err != nil {
			t.Fatalf("role %s: register failed: %v", tc.role, err)
		}
		if want := registry.topics[tc.cap].ID; user.TopicID != want {
			t.Fatalf("role %s: expected topic %s, got %s", tc.role, want.Hex(), user.TopicID.Hex())
		}
	}
}

func TestAuthService_Register_NoMatchingTopic(t *testing.T) {
	repo := newStubUserRepo()
	registry := &stubTopicRegistry{topics: map[domain.Capability]*domain.Topic{}}
	svc := newTestAuthService(repo, registry)

	user, err := svc.Register(context.Background(), registerInput("bob"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !user.TopicID.IsZero() {
		t.Fatalf("expected unset topic reference, got %s", user.TopicID.Hex())
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubTopicRegistry())

	missing := registerInput("carol")
	missing.Email = ""
	if _, err := svc.Register(context.Background(), missing); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing email, got %v", err)
	}

	spaced := registerInput("two words")
	if _, err := svc.Register(context.Background(), spaced); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for whitespace username, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubTopicRegistry())

	if _, err := svc.Register(context.Background(), registerInput("dave")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("dave")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one persisted user, got %d", len(repo.users))
	}
}

func TestAuthService_Login_ByUsernameAndEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubTopicRegistry())

	if _, err := svc.Register(context.Background(), registerInput("erin")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	byUsername, token, err := svc.Login(context.Background(), "erin", "s3cret-pass")
	if err != nil {
		t.Fatalf("login by username failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}
	if byUsername.Token != token {
		t.Fatalf("stored token does not match returned token")
	}

	byEmail, _, err := svc.Login(context.Background(), "erin@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login by email failed: %v", err)
	}
	if byEmail.ID != byUsername.ID {
		t.Fatalf("username and email logins resolved different users")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != byUsername.ID.Hex() {
		t.Fatalf("expected sub %s, got %v", byUsername.ID.Hex(), claims["sub"])
	}
	if claims["role"] != string(domain.RoleReader) {
		t.Fatalf("expected role reader, got %v", claims["role"])
	}
}

func TestAuthService_Login_UserHidesCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubTopicRegistry())

	_, _ = svc.Register(context.Background(), registerInput("frank"))
	user, _, err := svc.Login(context.Background(), "frank", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(data), "password") || strings.Contains(string(data), user.PasswordHash) {
		t.Fatalf("serialized user leaks password material: %s", data)
	}
	if strings.Contains(string(data), user.Token) {
		t.Fatalf("serialized user leaks session token: %s", data)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubTopicRegistry())

	_, _ = svc.Register(context.Background(), registerInput("grace"))
	if _, _, err := svc.Login(context.Background(), "grace", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	stored, err := repo.FindOne(context.Background(), ports.Filter{"username": "grace"})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Token != "" {
		t.Fatalf("failed login must not mutate the stored token")
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubTopicRegistry())

	if _, _, err := svc.Login(context.Background(), "nobody", "x"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_TokenPersistFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubTopicRegistry())

	_, _ = svc.Register(context.Background(), registerInput("heidi"))
	repo.updateErr = errors.New("write concern failed")

	user, token, err := svc.Login(context.Background(), "heidi", "s3cret-pass")
	if err == nil {
		t.Fatalf("expected error when token persistence fails")
	}
	if user != nil || token != "" {
		t.Fatalf("no token may be reported when the update fails")
	}
}
