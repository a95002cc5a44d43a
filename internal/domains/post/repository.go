package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for posts.
type Repository interface {
	// Create persists a post. Returns ErrTitleTaken on a title
	// uniqueness violation.
	Create(ctx context.Context, p *Post) error

	// FindByID returns a post of any publication state, or
	// ErrPostNotFound.
	FindByID(ctx context.Context, id string) (*Post, error)

	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]Post, error)

	// ListByAuthor returns an author's posts including drafts, newest
	// first.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Post, error)

	// Update replaces the mutable fields of the author's post. Returns
	// ErrPostNotFound when the post does not exist or belongs to another
	// author, ErrTitleTaken on a title conflict.
	Update(ctx context.Context, p *Post) (*Post, error)

	// Delete removes the author's post, with the same not-found
	// semantics as Update.
	Delete(ctx context.Context, id string, authorID uuid.UUID) error
}
