package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/ports"
)

type stubContentRepo struct {
	created *domain.Content
	deleted []string
}

func (r *stubContentRepo) Create(_ context.Context, c *domain.Content) (*domain.Content, error) {
	stored := *c
	stored.ID = primitive.NewObjectID()
	r.created = &stored
	return &stored, nil
}

func (r *stubContentRepo) Find(_ context.Context, _ ports.Filter) ([]*domain.Content, error) {
	if r.created == nil {
		return nil, nil
	}
	return []*domain.Content{r.created}, nil
}

func (r *stubContentRepo) FindOne(_ context.Context, filter ports.Filter) (*domain.Content, error) {
	if r.created != nil && filter["_id"] == r.created.ID {
		return r.created, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubContentRepo) Update(_ context.Context, _ string, _ ports.Filter) (*domain.Content, error) {
	return nil, domain.ErrNotFound
}

func (r *stubContentRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestContentService_Create(t *testing.T) {
	repo := &stubContentRepo{}
	svc := NewContentService(repo)

	content, err := svc.Create(context.Background(), &domain.Content{
		Title:     "Sunset",
		Kind:      domain.KindImage,
		Theme:     "nature",
		CreatorID: primitive.NewObjectID(),
		URL:       "https://cdn.example.com/sunset.jpg",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if content.ID.IsZero() {
		t.Fatalf("expected store-assigned id")
	}
}

func TestContentService_Create_Validation(t *testing.T) {
	svc := NewContentService(&stubContentRepo{})

	if _, err := svc.Create(context.Background(), &domain.Content{Kind: domain.KindText}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}

	noCreator := &domain.Content{Title: "t", Kind: domain.KindText, Theme: "misc"}
	if _, err := svc.Create(context.Background(), noCreator); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing creator, got %v", err)
	}
}

func TestContentService_FindByID_InvalidID(t *testing.T) {
	svc := NewContentService(&stubContentRepo{})

	if _, err := svc.FindByID(context.Background(), "not-a-hex-id"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestContentService_Delete(t *testing.T) {
	repo := &stubContentRepo{}
	svc := NewContentService(repo)

	id := primitive.NewObjectID().Hex()
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != id {
		t.Fatalf("delete not forwarded to repository: %v", repo.deleted)
	}
}
