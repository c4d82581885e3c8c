package author

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Titles an author may register with.
var Titles = []interface{}{"Mr", "Mrs", "Miss", "Mast"}

// Author is a registered user who can own blog posts.
type Author struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName string             `bson:"fname" json:"fname"`
	LastName  string             `bson:"lname" json:"lname"`
	Title     string             `bson:"title" json:"title"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
