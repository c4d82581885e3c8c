package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// Create handles POST /blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request parameter, please provide blog details")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, "new blog created successfully", b)
}

// List handles GET /filterblogs
func (h *BlogHandler) List(c *gin.Context) {
	q := blog.ListQuery{
		AuthorID:    queryParam(c, "authorId"),
		Category:    queryParam(c, "category"),
		Tags:        queryParam(c, "tags"),
		Subcategory: queryParam(c, "subcategory"),
	}

	blogs, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, "blogs list", blogs)
}

// Update handles PUT /blogs/:blogId
func (h *BlogHandler) Update(c *gin.Context) {
	var req blog.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please give blog details to update")
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("blogId"), middleware.AuthorID(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, "successfully updated blog details", b)
}

// Delete handles DELETE /blogs/:blogId
func (h *BlogHandler) Delete(c *gin.Context) {
	b, err := h.service.Delete(c.Request.Context(), c.Param("blogId"), middleware.AuthorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, "successfully deleted blog", b)
}

// DeleteByFilter handles DELETE /blogs
func (h *BlogHandler) DeleteByFilter(c *gin.Context) {
	q := blog.DeleteFilterQuery{
		AuthorID:    queryParam(c, "authorId"),
		Category:    queryParam(c, "category"),
		Tags:        queryParam(c, "tags"),
		Subcategory: queryParam(c, "subcategory"),
	}

	if raw := queryParam(c, "isPublished"); raw != nil {
		published, err := strconv.ParseBool(*raw)
		if err != nil {
			response.BadRequest(c, "isPublished must be true or false")
			return
		}
		q.IsPublished = &published
	}

	deleted, err := h.service.DeleteByFilter(c.Request.Context(), middleware.AuthorID(c), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, "blogs deleted successfully", gin.H{"deletedCount": deleted})
}

// queryParam distinguishes an absent parameter from a supplied one so a
// blank value can be rejected instead of silently ignored.
func queryParam(c *gin.Context, name string) *string {
	value, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	return &value
}

func (h *BlogHandler) handleError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.BadRequest(c, err.Error())
	case errors.Is(err, blog.ErrInvalidBlogID):
		response.BadRequest(c, fmt.Sprintf("%s is not a valid blog id", c.Param("blogId")))
	case errors.Is(err, blog.ErrInvalidAuthorID):
		response.BadRequest(c, "please provide a valid author id")
	case errors.Is(err, blog.ErrAuthorNotFound):
		response.BadRequest(c, "author does not exist")
	case errors.Is(err, blog.ErrNothingToUpdate):
		response.BadRequest(c, "Please give blog details to update")
	case errors.Is(err, blog.ErrNoFilter):
		response.BadRequest(c, "please provide at least one filter to delete by")
	case errors.Is(err, blog.ErrNotOwner):
		response.Unauthorized(c, "unauthorized access! owner info doesn't match")
	case errors.Is(err, blog.ErrBlogNotFound):
		response.NotFound(c, "no such blog found")
	case errors.Is(err, blog.ErrBlogAlreadyDeleted):
		response.NotFound(c, "blog already deleted")
	case errors.Is(err, blog.ErrNoBlogsFound):
		response.NotFound(c, "no blogs found")
	default:
		logger.Error("blog request failed", err)
		response.InternalServerError(c, "something went wrong")
	}
}
