package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"blogchat-backend/internal/config"
	infraCache "blogchat-backend/internal/infrastructure/cache"
	"blogchat-backend/internal/infrastructure/database"
	"blogchat-backend/pkg/cache"
	"blogchat-backend/pkg/jwt"

	"blogchat-backend/internal/domains/account"
	accountHandler "blogchat-backend/internal/domains/account/handler"
	accountRepo "blogchat-backend/internal/domains/account/repository"
	accountService "blogchat-backend/internal/domains/account/service"

	"blogchat-backend/internal/domains/chat"
	chatHandler "blogchat-backend/internal/domains/chat/handler"
	chatRepo "blogchat-backend/internal/domains/chat/repository"
	chatService "blogchat-backend/internal/domains/chat/service"

	"blogchat-backend/internal/domains/comment"
	commentHandler "blogchat-backend/internal/domains/comment/handler"
	commentRepo "blogchat-backend/internal/domains/comment/repository"
	commentService "blogchat-backend/internal/domains/comment/service"

	"blogchat-backend/internal/domains/post"
	postHandler "blogchat-backend/internal/domains/post/handler"
	postRepo "blogchat-backend/internal/domains/post/repository"
	postService "blogchat-backend/internal/domains/post/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the process lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	AccountRepo account.Repository
	PostRepo    post.Repository
	CommentRepo comment.Repository
	ChatRepo    chat.Repository

	// Services
	AccountService account.Service
	PostService    post.Service
	CommentService comment.Service
	ChatService    chat.Service

	// Handlers
	AccountHandler *accountHandler.AccountHandler
	PostHandler    *postHandler.PostHandler
	CommentHandler *commentHandler.CommentHandler
	ChatHandler    *chatHandler.ChatHandler
}

// NewContainer initializes the dependency graph in order: config,
// infrastructure, repositories, services, handlers. Any failure aborts
// startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// A cold cache degrades reads, it does not break them.
			log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenTTL())

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	// The global chat must exist before the first message lands in it.
	if err := c.ChatRepo.EnsureGlobalChat(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed global chat: %w", err)
	}

	return c, nil
}

func (c *Container) initRepositories() {
	c.AccountRepo = accountRepo.NewPostgresRepository(c.DB.Pool)
	c.PostRepo = postRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.CommentRepo = commentRepo.NewPostgresRepository(c.DB.Pool)
	c.ChatRepo = chatRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.AccountService = accountService.NewAccountService(c.AccountRepo, c.JWTManager)
	c.PostService = postService.NewPostService(c.PostRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.ChatService = chatService.NewChatService(c.ChatRepo)
}

func (c *Container) initHandlers() {
	c.AccountHandler = accountHandler.NewAccountHandler(c.AccountService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.ChatHandler = chatHandler.NewChatHandler(c.ChatService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		_ = rc.Close()
	}
}
