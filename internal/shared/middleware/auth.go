package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/token"
)

// TokenHeader is the custom header carrying the author token, kept from
// the original API contract instead of the standard Authorization header.
const TokenHeader = "x-api-key"

// Context keys set by Auth; Logger reads ContextAuthorID to tag request
// logs with the caller.
const (
	ContextAuthorID  = "authorId"
	ContextSessionID = "sessionId"
)

// SessionChecker reports whether a token's session is still active.
type SessionChecker interface {
	IsActive(ctx context.Context, sessionID string) (bool, error)
}

// Auth verifies the x-api-key token on protected routes and attaches the
// caller's author id to the request context.
func Auth(tokens *token.Manager, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(TokenHeader)
		if raw == "" {
			response.Forbidden(c, "missing authentication token in request")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			logger.Warn("token verification failed", map[string]interface{}{
				"request_id": c.GetString("request_id"),
				"error":      err.Error(),
			})
			response.Forbidden(c, "invalid authentication token in request")
			c.Abort()
			return
		}

		active, err := sessions.IsActive(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error("session lookup failed", err)
			response.InternalServerError(c, "could not verify authentication token")
			c.Abort()
			return
		}
		if !active {
			response.Forbidden(c, "invalid authentication token in request")
			c.Abort()
			return
		}

		c.Set(ContextAuthorID, claims.AuthorID)
		c.Set(ContextSessionID, claims.ID)
		c.Next()
	}
}

// AuthorID returns the authenticated author id set by Auth.
func AuthorID(c *gin.Context) string {
	return c.GetString(ContextAuthorID)
}

// SessionID returns the token session id set by Auth.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
