package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blogchat-backend/internal/domains/post"
)

// postService implements post.Service.
type postService struct {
	repo post.Repository
}

// NewPostService builds the post business logic layer.
func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) ListPublished(ctx context.Context) ([]post.Post, error) {
	return s.repo.ListPublished(ctx)
}

func (s *postService) GetPublished(ctx context.Context, id string) (*post.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Drafts do not exist as far as the public surface is concerned.
	if !p.Published {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (s *postService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]post.Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *postService) Get(ctx context.Context, id string) (*post.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, req post.CreatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &post.Post{
		ID:        req.ID,
		Title:     req.Title,
		Text:      req.Text,
		Published: req.Published,
		CreatedAt: time.Now(),
		AuthorID:  authorID,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *postService) Update(ctx context.Context, authorID uuid.UUID, id string, req post.UpdatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := time.Now()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	} else if existing, err := s.repo.FindByID(ctx, id); err == nil {
		createdAt = existing.CreatedAt
	}

	p := &post.Post{
		ID:        id,
		Title:     req.Title,
		Text:      req.Text,
		Published: req.Published,
		CreatedAt: createdAt,
		AuthorID:  authorID,
	}

	return s.repo.Update(ctx, p)
}

func (s *postService) Delete(ctx context.Context, authorID uuid.UUID, id string) error {
	return s.repo.Delete(ctx, id, authorID)
}
