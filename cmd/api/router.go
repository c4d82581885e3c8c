package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

// SetupRouter wires the flat API surface: author routes are public, every
// blog route sits behind the token verifier.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	router.POST("/authors", c.AuthorHandler.Register)
	router.POST("/login", c.AuthorHandler.Login)

	authed := router.Group("/", middleware.Auth(c.Tokens, c.Sessions))
	{
		authed.POST("/logout", c.AuthorHandler.Logout)

		authed.POST("/blogs", c.BlogHandler.Create)
		authed.GET("/filterblogs", c.BlogHandler.List)
		authed.PUT("/blogs/:blogId", c.BlogHandler.Update)
		authed.DELETE("/blogs/:blogId", c.BlogHandler.Delete)
		authed.DELETE("/blogs", c.BlogHandler.DeleteByFilter)
	}

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		dbStatus := "ok"
		{
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		{
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error: " + err.Error()
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
