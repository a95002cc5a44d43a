package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogchat-backend/internal/domains/chat"
	"blogchat-backend/internal/shared/middleware"
	"blogchat-backend/internal/shared/response"
	"blogchat-backend/pkg/logger"
)

// ChatHandler serves the direct-messaging routes. All of them sit behind
// RequireAuth: either role may chat.
type ChatHandler struct {
	service chat.Service
}

func NewChatHandler(service chat.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// List handles GET /chats, the caller's chat list.
func (h *ChatHandler) List(c *gin.Context) {
	callerID, ok := callerFromContext(c)
	if !ok {
		return
	}

	chats, err := h.service.ListForParticipant(c.Request.Context(), callerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", chats)
}

// Create handles POST /chats: get-or-create the chat with another
// participant.
func (h *ChatHandler) Create(c *gin.Context) {
	callerID, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req chat.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.GetOrCreate(c.Request.Context(), callerID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", created)
}

// Get handles GET /chats/:chatId, the chat plus its messages.
func (h *ChatHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("chatId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", detail)
}

// PostMessage handles POST /chats/:chatId.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	callerID, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req chat.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.service.PostMessage(c.Request.Context(), c.Param("chatId"), callerID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", m)
}

func callerFromContext(c *gin.Context) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.Unauthorized(c, "No or invalid token")
		return "", false
	}
	return claims.UserID, true
}

func (h *ChatHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", verrs)
	case errors.Is(err, chat.ErrChatNotFound):
		response.NotFound(c, "Chat not found")
	default:
		logger.Error("chat operation failed", err)
		response.InternalServerError(c, "Server error")
	}
}
