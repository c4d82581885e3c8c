package blog

import "errors"

// Repository-level errors
var (
	ErrBlogNotFound = errors.New("no such blog found")
)

// Service-level errors
var (
	ErrInvalidBlogID      = errors.New("invalid blog id")
	ErrInvalidAuthorID    = errors.New("invalid author id")
	ErrAuthorNotFound     = errors.New("author does not exist")
	ErrNotOwner           = errors.New("unauthorized access, owner info doesn't match")
	ErrBlogAlreadyDeleted = errors.New("blog already deleted")
	ErrNoBlogsFound       = errors.New("no blogs found")
	ErrNothingToUpdate    = errors.New("no blog details to update")
	ErrNoFilter           = errors.New("no delete filter supplied")
)
