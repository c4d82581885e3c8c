package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterRequest - POST /authors
type RegisterRequest struct {
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.In(Titles...).Error("title should be among Mr, Mrs, Miss and Mast"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("email should be a valid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

// LoginRequest - POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("email should be a valid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

// LoginResult carries everything the login endpoint returns: the token is
// sent both as the x-api-key response header and in the body.
type LoginResult struct {
	AuthorID string `json:"authorId"`
	Token    string `json:"token"`
}
