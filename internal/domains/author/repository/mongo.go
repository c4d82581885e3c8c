package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-backend/internal/domains/author"
)

const collectionName = "authors"

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) author.Repository {
	return &mongoRepository{collection: db.Collection(collectionName)}
}

func (r *mongoRepository) Create(ctx context.Context, a *author.Author) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return author.ErrEmailAlreadyRegistered
	}
	if err != nil {
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*author.Author, error) {
	var a author.Author
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find author by email: %w", err)
	}
	return &a, nil
}

func (r *mongoRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("count authors by id: %w", err)
	}
	return count > 0, nil
}
