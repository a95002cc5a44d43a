package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogchat-backend/internal/shared/middleware"
	"blogchat-backend/internal/shared/response"
	"blogchat-backend/pkg/container"
)

// SetupRouter wires the full route tree. Paths mirror the API contract:
// public reads under /posts, author operations under /dashboard, chat
// under /chats.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	router.POST("/login", c.AccountHandler.Login)
	router.POST("/signup", c.AccountHandler.Signup)

	setupPostRoutes(router, c)
	setupDashboardRoutes(router, c)
	setupUserRoutes(router, c)
	setupChatRoutes(router, c)

	return router
}

// setupPostRoutes covers the public post surface. Reads are open; comment
// writes require a user token.
func setupPostRoutes(router *gin.Engine, c *container.Container) {
	requireUser := middleware.RequireRole(c.JWTManager, middleware.RoleUser)

	posts := router.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPublished)
		posts.GET("/:postId", c.PostHandler.GetPublished)

		posts.GET("/:postId/comments", c.CommentHandler.List)
		posts.POST("/:postId/comments", requireUser, c.CommentHandler.Create)
		posts.PUT("/:postId/comments/:commentId", requireUser, c.CommentHandler.Update)
		posts.DELETE("/:postId/comments/:commentId", requireUser, c.CommentHandler.Delete)
	}
}

// setupDashboardRoutes covers the author dashboard: full post/draft CRUD
// and comment moderation, all behind the author gate.
func setupDashboardRoutes(router *gin.Engine, c *container.Container) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.RequireRole(c.JWTManager, middleware.RoleAuthor))
	{
		dashboard.GET("/posts", c.PostHandler.ListByAuthor)
		dashboard.POST("/posts", c.PostHandler.Create)
		dashboard.GET("/posts/:postId", c.PostHandler.Get)
		dashboard.PUT("/posts/:postId", c.PostHandler.Update)
		dashboard.DELETE("/posts/:postId", c.PostHandler.Delete)

		// Drafts are posts with published=false; the aliases exist so
		// the editor can address them separately.
		dashboard.GET("/drafts/:postId", c.PostHandler.Get)
		dashboard.PUT("/drafts/:postId", c.PostHandler.Update)

		dashboard.POST("/posts/:postId/comments", c.CommentHandler.Create)
		dashboard.PUT("/posts/:postId/comments/:commentId", c.CommentHandler.Update)
		dashboard.DELETE("/posts/:postId/comments/:commentId", c.CommentHandler.Delete)
	}
}

func setupUserRoutes(router *gin.Engine, c *container.Container) {
	users := router.Group("/users")
	users.Use(middleware.RequireRole(c.JWTManager, middleware.RoleUser))
	{
		users.PUT("/me", c.AccountHandler.UpdateProfile)
	}
}

func setupChatRoutes(router *gin.Engine, c *container.Container) {
	chats := router.Group("/chats")
	chats.Use(middleware.RequireAuth(c.JWTManager))
	{
		chats.GET("", c.ChatHandler.List)
		chats.POST("", c.ChatHandler.Create)
		chats.GET("/users", c.AccountHandler.ListUsers)
		chats.GET("/:chatId", c.ChatHandler.Get)
		chats.POST("/:chatId", c.ChatHandler.PostMessage)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "database unreachable")
			return
		}
		response.Success(ctx, http.StatusOK, "ok", nil)
	}
}
