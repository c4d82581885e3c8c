package blog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a post owned by a single author. Deletion is a soft mark,
// documents are never physically removed.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Body        string             `bson:"body" json:"body"`
	AuthorID    primitive.ObjectID `bson:"authorId" json:"authorId"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	Subcategory []string           `bson:"subcategory" json:"subcategory"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	PublishedAt *time.Time         `bson:"publishedAt" json:"publishedAt"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted"`
	DeletedAt   *time.Time         `bson:"deletedAt" json:"deletedAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OwnedBy is the single authorization predicate for every mutating
// operation: requester id equals resource owner id.
func (b *Blog) OwnedBy(authorID primitive.ObjectID) bool {
	return b.AuthorID == authorID
}
