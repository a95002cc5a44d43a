package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogchat-backend/internal/domains/comment"
	"blogchat-backend/internal/shared/response"
	"blogchat-backend/pkg/logger"
)

// CommentHandler serves comment CRUD under both the public post routes
// (user gate) and the dashboard routes (author gate). The gates are wired
// in the router; handlers are shared.
type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET .../posts/:postId/comments.
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.service.ListByParent(c.Request.Context(), c.Param("postId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", comments)
}

// Create handles POST .../posts/:postId/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.Param("postId"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment created", created)
}

// Update handles PUT .../posts/:postId/comments/:commentId.
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := commentIDParam(c)
	if !ok {
		return
	}

	var req comment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), commentID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Comment updated", updated)
}

// Delete handles DELETE .../posts/:postId/comments/:commentId.
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := commentIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), commentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Comment deleted", deleted)
}

func commentIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.BadRequest(c, "Invalid comment id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", verrs)
	case errors.Is(err, comment.ErrCommentNotFound):
		response.NotFound(c, "Comment not found")
	default:
		logger.Error("comment operation failed", err)
		response.InternalServerError(c, "Server error")
	}
}
