package account

import "errors"

// Repository-level errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPrincipalNotFound = errors.New("username does not exist")
	ErrUsernameTaken     = errors.New("username already exists")
)

// Service-level errors
var (
	ErrWrongPassword = errors.New("wrong password")
)
