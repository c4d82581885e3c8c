package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/session"
	"blog-backend/pkg/token"

	"blog-backend/internal/domains/author"
	authorHandler "blog-backend/internal/domains/author/handler"
	authorRepo "blog-backend/internal/domains/author/repository"
	authorService "blog-backend/internal/domains/author/service"

	"blog-backend/internal/domains/blog"
	blogHandler "blog-backend/internal/domains/blog/handler"
	blogRepo "blog-backend/internal/domains/blog/repository"
	blogService "blog-backend/internal/domains/blog/service"
)

// Container is the root of the dependency graph. Initialization order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config   *config.Config
	DB       *database.MongoDB
	Cache    *cache.RedisClient
	Tokens   *token.Manager
	Sessions *session.Store

	AuthorRepo author.Repository
	BlogRepo   blog.Repository

	AuthorService author.Service
	BlogService   blog.Service

	AuthorHandler *authorHandler.AuthorHandler
	BlogHandler   *blogHandler.BlogHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	db, err := database.NewMongoDB(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("init mongo: %w", err)
	}
	c.DB = db

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(indexCtx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}
	c.Cache = redisClient

	c.Tokens = token.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	c.Sessions = session.NewStore(redisClient.Client)

	c.AuthorRepo = authorRepo.NewMongoRepository(db.Database)
	c.BlogRepo = blogRepo.NewMongoRepository(db.Database)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.Tokens, c.Sessions)
	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.AuthorRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			logger.Error("close mongo", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
}
