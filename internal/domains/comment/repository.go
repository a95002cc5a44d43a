package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for comments.
type Repository interface {
	// Create persists a comment.
	Create(ctx context.Context, c *Comment) error

	// ListByParent returns a post's comments, oldest first.
	ListByParent(ctx context.Context, parentID string) ([]Comment, error)

	// UpdateText replaces a comment's text, returning the updated
	// comment or ErrCommentNotFound.
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*Comment, error)

	// Delete removes a comment, returning the deleted comment or
	// ErrCommentNotFound.
	Delete(ctx context.Context, id uuid.UUID) (*Comment, error)
}
