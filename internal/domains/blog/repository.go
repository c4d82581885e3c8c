package blog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListFilter is the composed AND predicate for list and bulk-delete
// queries. Soft-deleted documents are always excluded.
type ListFilter struct {
	AuthorID    *primitive.ObjectID
	Category    *string  // exact match, caller trims
	Tags        []string // set containment: every value must be present
	Subcategory []string // same semantics as Tags
	IsPublished *bool
}

// UpdateSpec describes a partial update. Tag and subcategory values are
// merged add-if-absent, never replaced.
type UpdateSpec struct {
	Title          *string
	Body           *string
	AddTags        []string
	AddSubcategory []string
	IsPublished    *bool
	PublishedAt    *time.Time // written whenever IsPublished is set
	UpdatedAt      time.Time
}

// Repository is the blog data access layer.
type Repository interface {
	Create(ctx context.Context, b *Blog) error

	// FindByID returns the document regardless of its soft-delete state;
	// ErrBlogNotFound when the id matches nothing.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Blog, error)

	Find(ctx context.Context, f ListFilter) ([]Blog, error)

	// Update applies the spec and returns the post-update document.
	Update(ctx context.Context, id primitive.ObjectID, u UpdateSpec) (*Blog, error)

	// SoftDelete marks one document deleted and returns it post-update.
	SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time) (*Blog, error)

	// SoftDeleteMany marks every given id deleted, returning the number of
	// documents modified.
	SoftDeleteMany(ctx context.Context, ids []primitive.ObjectID, at time.Time) (int64, error)
}

// AuthorChecker is the slice of the author domain the blog service needs:
// create-time validation that authorId references a real author.
type AuthorChecker interface {
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// Service is the blog business logic layer.
type Service interface {
	Create(ctx context.Context, req CreateBlogRequest) (*Blog, error)
	List(ctx context.Context, q ListQuery) ([]Blog, error)
	Update(ctx context.Context, blogID, callerID string, req UpdateBlogRequest) (*Blog, error)
	Delete(ctx context.Context, blogID, callerID string) (*Blog, error)
	DeleteByFilter(ctx context.Context, callerID string, q DeleteFilterQuery) (int64, error)
}
