package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blogchat-backend/internal/domains/account"
	"blogchat-backend/pkg/jwt"
)

// bcryptCost matches the work factor the rest of the stored hashes were
// generated with.
const bcryptCost = 10

// accountService implements account.Service.
type accountService struct {
	repo       account.Repository
	jwtManager *jwt.Manager
}

// NewAccountService builds the account business logic layer.
func NewAccountService(repo account.Repository, jwtManager *jwt.Manager) account.Service {
	return &accountService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *accountService) Signup(ctx context.Context, req account.SignupRequest) error {
	// Surrounding whitespace is stripped before validation, so " ana "
	// signs up and logs in as "ana".
	req.Username = strings.TrimSpace(req.Username)

	if err := req.Validate(); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	newUser := &account.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}

	// The repository translates the username uniqueness violation to
	// account.ErrUsernameTaken; everything else bubbles up unclassified.
	return s.repo.CreateUser(ctx, newUser)
}

func (s *accountService) Login(ctx context.Context, req account.LoginRequest) (*account.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	principal, err := s.repo.FindPrincipalByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(req.Password)); err != nil {
		return nil, account.ErrWrongPassword
	}

	token, err := s.jwtManager.Generate(principal.ID.String(), principal.Username, principal.Role)
	if err != nil {
		// jwt.ErrNoSecret surfaces as a server configuration fault.
		return nil, err
	}

	return &account.LoginResponse{
		Message: "Auth Passed",
		Token:   token,
	}, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, req account.UpdateProfileRequest) (*account.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.UpdateUserProfile(ctx, userID, req.About, req.Picture)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]account.UserDTO, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]account.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDTO())
	}
	return dtos, nil
}
