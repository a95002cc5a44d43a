package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogchat-backend/internal/domains/post"
	"blogchat-backend/internal/shared/middleware"
	"blogchat-backend/internal/shared/response"
	"blogchat-backend/pkg/logger"
)

// PostHandler serves both the public post surface and the author
// dashboard.
type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// ListPublished handles GET /posts.
func (h *PostHandler) ListPublished(c *gin.Context) {
	posts, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", posts)
}

// GetPublished handles GET /posts/:postId.
func (h *PostHandler) GetPublished(c *gin.Context) {
	p, err := h.service.GetPublished(c.Request.Context(), c.Param("postId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", p)
}

// ListByAuthor handles GET /dashboard/posts, drafts included.
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	authorID, ok := authorFromContext(c)
	if !ok {
		return
	}

	posts, err := h.service.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", posts)
}

// Get handles GET /dashboard/posts/:postId and GET /dashboard/drafts/:postId.
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("postId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", p)
}

// Create handles POST /dashboard/posts.
func (h *PostHandler) Create(c *gin.Context) {
	authorID, ok := authorFromContext(c)
	if !ok {
		return
	}

	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Post created", p)
}

// Update handles PUT /dashboard/posts/:postId and PUT /dashboard/drafts/:postId.
func (h *PostHandler) Update(c *gin.Context) {
	authorID, ok := authorFromContext(c)
	if !ok {
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), authorID, c.Param("postId"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Post updated", p)
}

// Delete handles DELETE /dashboard/posts/:postId.
func (h *PostHandler) Delete(c *gin.Context) {
	authorID, ok := authorFromContext(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), authorID, c.Param("postId")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Post deleted", nil)
}

// authorFromContext reads the author id attached by the role gate. A
// failure here means the route was wired without the middleware.
func authorFromContext(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.Unauthorized(c, "No or invalid token")
		return uuid.Nil, false
	}

	authorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.Unauthorized(c, "Invalid principal id in token")
		return uuid.Nil, false
	}

	return authorID, true
}

func (h *PostHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", verrs)
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, post.ErrTitleTaken):
		response.Conflict(c, "A post with this title already exists.")
	default:
		logger.Error("post operation failed", err)
		response.InternalServerError(c, "Server error")
	}
}
