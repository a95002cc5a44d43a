package comment

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for comments.
//
// Edit and delete are gated by role only; a caller is not required to be
// the comment's original commenter (authors moderate comments on their
// posts). See DESIGN.md for the ownership decision.
type Service interface {
	// Create attaches a comment to the given post.
	Create(ctx context.Context, parentID string, req CreateCommentRequest) (*Comment, error)

	// ListByParent returns a post's comments, oldest first.
	ListByParent(ctx context.Context, parentID string) ([]Comment, error)

	// Update replaces a comment's text.
	Update(ctx context.Context, id uuid.UUID, req UpdateCommentRequest) (*Comment, error)

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) (*Comment, error)
}
