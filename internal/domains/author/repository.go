package author

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the author data access layer.
type Repository interface {
	// Create inserts a new author. Returns ErrEmailAlreadyRegistered when
	// the unique email index rejects the insert.
	Create(ctx context.Context, a *Author) error

	// FindByEmail returns ErrAuthorNotFound when no author has that email.
	FindByEmail(ctx context.Context, email string) (*Author, error)

	// ExistsByID reports whether an author with the given id exists.
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
