package account

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for accounts.
type Service interface {
	// Signup validates and creates a new user account.
	Signup(ctx context.Context, req SignupRequest) error

	// Login authenticates a principal of either kind and issues a bearer
	// token embedding id, username and role.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// UpdateProfile updates a user's optional profile fields.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error)

	// ListUsers lists users available as chat participants.
	ListUsers(ctx context.Context) ([]UserDTO, error)
}
