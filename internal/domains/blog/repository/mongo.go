package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-backend/internal/domains/blog"
)

const collectionName = "blogs"

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) blog.Repository {
	return &mongoRepository{collection: db.Collection(collectionName)}
}

func (r *mongoRepository) Create(ctx context.Context, b *blog.Blog) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*blog.Blog, error) {
	var b blog.Blog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, blog.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by id: %w", err)
	}
	return &b, nil
}

func (r *mongoRepository) Find(ctx context.Context, f blog.ListFilter) ([]blog.Blog, error) {
	cursor, err := r.collection.Find(ctx, BuildFilter(f))
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []blog.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, u blog.UpdateSpec) (*blog.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b blog.Blog
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, BuildUpdate(u), opts).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, blog.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &b, nil
}

func (r *mongoRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time) (*blog.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{
		"isDeleted": true,
		"deletedAt": at,
		"updatedAt": at,
	}}

	var b blog.Blog
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, blog.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("soft delete blog: %w", err)
	}
	return &b, nil
}

func (r *mongoRepository) SoftDeleteMany(ctx context.Context, ids []primitive.ObjectID, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}, "isDeleted": false}
	update := bson.M{"$set": bson.M{
		"isDeleted": true,
		"deletedAt": at,
		"updatedAt": at,
	}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("soft delete blogs: %w", err)
	}
	return result.ModifiedCount, nil
}

// BuildFilter translates a ListFilter into the Mongo query document.
// Soft-deleted posts are excluded unconditionally.
func BuildFilter(f blog.ListFilter) bson.M {
	q := bson.M{"isDeleted": false}

	if f.AuthorID != nil {
		q["authorId"] = *f.AuthorID
	}
	if f.Category != nil {
		q["category"] = *f.Category
	}
	if len(f.Tags) > 0 {
		q["tags"] = bson.M{"$all": f.Tags}
	}
	if len(f.Subcategory) > 0 {
		q["subcategory"] = bson.M{"$all": f.Subcategory}
	}
	if f.IsPublished != nil {
		q["isPublished"] = *f.IsPublished
	}

	return q
}

// BuildUpdate translates an UpdateSpec into the Mongo update document.
// Tag and subcategory values go through $addToSet so existing entries are
// kept and duplicates never land in the array.
func BuildUpdate(u blog.UpdateSpec) bson.M {
	set := bson.M{"updatedAt": u.UpdatedAt}

	if u.Title != nil {
		set["title"] = strings.TrimSpace(*u.Title)
	}
	if u.Body != nil {
		set["body"] = *u.Body
	}
	if u.IsPublished != nil {
		set["isPublished"] = *u.IsPublished
		set["publishedAt"] = u.PublishedAt // nil clears the timestamp
	}

	update := bson.M{"$set": set}

	addToSet := bson.M{}
	if len(u.AddTags) > 0 {
		addToSet["tags"] = bson.M{"$each": u.AddTags}
	}
	if len(u.AddSubcategory) > 0 {
		addToSet["subcategory"] = bson.M{"$each": u.AddSubcategory}
	}
	if len(addToSet) > 0 {
		update["$addToSet"] = addToSet
	}

	return update
}
