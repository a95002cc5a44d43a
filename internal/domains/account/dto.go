package account

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var (
	alphaOnly = regexp.MustCompile(`^[A-Za-z]+$`)
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
	hasSymbol = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// checkPassword runs every password rule and reports all of them at once.
// A chained rule list would stop at the first failure within the field;
// clients need the complete list to fix the password in one go.
func checkPassword(value interface{}) error {
	password, _ := value.(string)

	var failures []string
	if len(password) < 8 {
		failures = append(failures, "Password must be at least 8 characters long")
	}
	if !hasLower.MatchString(password) {
		failures = append(failures, "Password must include at least 1 lowercase letter")
	}
	if !hasUpper.MatchString(password) {
		failures = append(failures, "Password must include at least 1 uppercase letter")
	}
	if !hasDigit.MatchString(password) {
		failures = append(failures, "Password must include at least 1 number")
	}
	if !hasSymbol.MatchString(password) {
		failures = append(failures, "Password must include at least 1 symbol")
	}

	if len(failures) == 0 {
		return nil
	}
	return errors.New(strings.Join(failures, "; "))
}

// SignupRequest creates a new user account.
type SignupRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Validate applies the signup rules. Failures are collected across fields,
// and checkPassword reports every failing password rule, so the client gets
// the full list in one response.
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Match(alphaOnly).Error("Username must only contain letters"),
			validation.Length(1, 10).Error("Username must be between 1 and 10 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.By(checkPassword),
		),
		validation.Field(&r.ConfirmPassword,
			validation.Required.Error("confirmPassword is required"),
			validation.By(func(interface{}) error {
				if r.ConfirmPassword != r.Password {
					return errors.New("Passwords do not match")
				}
				return nil
			}),
		),
	)
}

// LoginRequest authenticates an existing principal of either kind.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UpdateProfileRequest sets the optional user profile fields. A nil field
// is left unchanged.
type UpdateProfileRequest struct {
	About   *string `json:"about"`
	Picture *string `json:"picture"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.About, validation.Length(0, 500)),
		validation.Field(&r.Picture, validation.Length(0, 2048)),
	)
}

// UserDTO is the client-facing shape of a user.
type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	About    *string   `json:"about,omitempty"`
	Picture  *string   `json:"picture,omitempty"`
}

// ToDTO strips fields that must never reach a client.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		About:    u.About,
		Picture:  u.Picture,
	}
}
