package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply attached to a post (parentId is the post id). Exactly
// one of UserID/AuthorID identifies the commenter; the schema enforces the
// same invariant with a CHECK constraint, but requests violating it are
// rejected before they reach the store.
type Comment struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Text      string     `db:"text" json:"text"`
	ParentID  string     `db:"parent_id" json:"parentId"`
	UserID    *uuid.UUID `db:"user_id" json:"userId,omitempty"`
	AuthorID  *uuid.UUID `db:"author_id" json:"authorId,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}
