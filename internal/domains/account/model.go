package account

import (
	"time"

	"github.com/google/uuid"
)

// User is a reader account. Users comment on posts and chat.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	About        *string   `db:"about" json:"about,omitempty"`
	Picture      *string   `db:"picture" json:"picture,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Author is a writer account with access to the dashboard. Authors are
// provisioned out of band; signup only creates users.
type Author struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Roles a principal can authenticate as. The role determines which gated
// routes its tokens pass.
const (
	RoleUser   = "user"
	RoleAuthor = "author"
)

// Principal is the union view used by login: one identity resolved across
// both account kinds, tagged with its role.
type Principal struct {
	ID           uuid.UUID
	Username     string
	Role         string
	PasswordHash string
}
