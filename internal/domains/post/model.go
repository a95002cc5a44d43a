package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry. The id is supplied by the client at creation time
// (the editor pre-generates it so drafts can be addressed before first
// save). Unpublished posts are drafts, visible only on the author
// dashboard.
type Post struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Text      string    `db:"text" json:"text"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	AuthorID  uuid.UUID `db:"author_id" json:"authorId"`
}
