package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for principals.
type Repository interface {
	// CreateUser persists a new user. Returns ErrUsernameTaken on a
	// username uniqueness violation.
	CreateUser(ctx context.Context, u *User) error

	// FindPrincipalByUsername resolves a username across both account
	// kinds. Authors are checked first; on a cross-kind collision the
	// author shadows the user. Returns ErrPrincipalNotFound when neither
	// kind matches.
	FindPrincipalByUsername(ctx context.Context, username string) (*Principal, error)

	// FindUserByID returns a user or ErrUserNotFound.
	FindUserByID(ctx context.Context, id uuid.UUID) (*User, error)

	// UpdateUserProfile sets the profile fields that are non-nil and
	// returns the updated user.
	UpdateUserProfile(ctx context.Context, id uuid.UUID, about, picture *string) (*User, error)

	// ListUsers returns all users, for picking chat participants.
	ListUsers(ctx context.Context) ([]User, error)
}
