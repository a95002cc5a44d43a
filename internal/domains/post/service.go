package post

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for posts.
type Service interface {
	// ListPublished returns the public feed.
	ListPublished(ctx context.Context) ([]Post, error)

	// GetPublished returns a single published post for public reads.
	// Drafts are invisible here and report ErrPostNotFound.
	GetPublished(ctx context.Context, id string) (*Post, error)

	// ListByAuthor returns the dashboard view, drafts included.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Post, error)

	// Get returns any post by id for the dashboard.
	Get(ctx context.Context, id string) (*Post, error)

	// Create persists a new post or draft owned by authorID.
	Create(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*Post, error)

	// Update replaces the mutable fields of the author's post.
	Update(ctx context.Context, authorID uuid.UUID, id string, req UpdatePostRequest) (*Post, error)

	// Delete removes the author's post.
	Delete(ctx context.Context, authorID uuid.UUID, id string) error
}
