package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Register handles POST /authors
func (h *AuthorHandler) Register(c *gin.Context) {
	var req author.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request parameter, please provide author details")
		return
	}

	a, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, req.Email)
		return
	}

	response.Created(c, "author created successfully", a)
}

// Login handles POST /login
func (h *AuthorHandler) Login(c *gin.Context) {
	var req author.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request parameter, please provide login details")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, req.Email)
		return
	}

	// The token travels both ways the original API did: custom header and body.
	c.Header(middleware.TokenHeader, result.Token)
	response.OK(c, "author login successful", result)
}

// Logout handles POST /logout
func (h *AuthorHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.handleError(c, err, "")
		return
	}

	response.OK(c, "author logged out successfully", nil)
}

func (h *AuthorHandler) handleError(c *gin.Context, err error, email string) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.BadRequest(c, err.Error())
	case errors.Is(err, author.ErrEmailAlreadyRegistered):
		response.BadRequest(c, fmt.Sprintf("%s email address is already registered", email))
	case errors.Is(err, author.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid login")
	default:
		logger.Error("author request failed", err)
		response.InternalServerError(c, "something went wrong")
	}
}
