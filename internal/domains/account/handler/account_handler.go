package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogchat-backend/internal/domains/account"
	"blogchat-backend/internal/shared/middleware"
	"blogchat-backend/internal/shared/response"
	"blogchat-backend/pkg/jwt"
	"blogchat-backend/pkg/logger"
)

// AccountHandler translates HTTP requests into account service calls.
type AccountHandler struct {
	service account.Service
}

func NewAccountHandler(service account.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

// Signup handles POST /signup.
func (h *AccountHandler) Signup(c *gin.Context) {
	var req account.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Signup(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User created", nil)
}

// Login handles POST /login for both principal kinds.
func (h *AccountHandler) Login(c *gin.Context) {
	var req account.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp.Message, gin.H{"token": resp.Token})
}

// UpdateProfile handles PUT /users/me (user role).
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.Unauthorized(c, "No or invalid token")
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.Unauthorized(c, "Invalid principal id in token")
		return
	}

	var req account.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dto, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", dto)
}

// ListUsers handles GET /chats/users, the participant picker.
func (h *AccountHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", users)
}

// handleError maps domain errors to HTTP responses. Unknown errors are
// logged with their cause and returned as a generic 500.
func (h *AccountHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", verrs)
	case errors.Is(err, account.ErrPrincipalNotFound):
		response.Unauthorized(c, "Username does not exist")
	case errors.Is(err, account.ErrWrongPassword):
		response.Unauthorized(c, "Wrong password")
	case errors.Is(err, account.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, account.ErrUsernameTaken):
		response.Conflict(c, "An account with this username already exists.")
	case errors.Is(err, jwt.ErrNoSecret):
		logger.Error("signing secret is not configured", err)
		response.InternalServerError(c, "Server configuration error.")
	default:
		logger.Error("account operation failed", err)
		response.InternalServerError(c, "Something went wrong. Please try again.")
	}
}
