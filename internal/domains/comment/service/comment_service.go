package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blogchat-backend/internal/domains/comment"
)

// commentService implements comment.Service.
type commentService struct {
	repo comment.Repository
}

// NewCommentService builds the comment business logic layer.
func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

func (s *commentService) Create(ctx context.Context, parentID string, req comment.CreateCommentRequest) (*comment.Comment, error) {
	// Validated here, before the insert, so an exactly-one-commenter
	// violation is a 400 and never a constraint error from the store.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &comment.Comment{
		ID:        uuid.New(),
		Text:      req.Text,
		ParentID:  parentID,
		UserID:    req.UserID,
		AuthorID:  req.AuthorID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *commentService) ListByParent(ctx context.Context, parentID string) ([]comment.Comment, error) {
	return s.repo.ListByParent(ctx, parentID)
}

func (s *commentService) Update(ctx context.Context, id uuid.UUID, req comment.UpdateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateText(ctx, id, req.Text)
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	return s.repo.Delete(ctx, id)
}
