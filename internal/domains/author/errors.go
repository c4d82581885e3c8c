package author

import "errors"

// Repository-level errors
var (
	ErrAuthorNotFound         = errors.New("author not found")
	ErrEmailAlreadyRegistered = errors.New("email address is already registered")
)

// Service-level errors
var (
	ErrInvalidCredentials = errors.New("invalid login")
)
