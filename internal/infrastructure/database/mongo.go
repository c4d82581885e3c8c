package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blog-backend/internal/config"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(cfg config.MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

// EnsureIndexes creates the indexes the services rely on. The unique email
// index is what enforces author email uniqueness, there is no
// check-then-insert in the registration path.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	authors := db.Database.Collection("authors")
	_, err := authors.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create authors email index: %w", err)
	}

	blogs := db.Database.Collection("blogs")
	_, err = blogs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "authorId", Value: 1}}},
		{Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "isPublished", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create blogs indexes: %w", err)
	}

	return nil
}

func (db *MongoDB) HealthCheck(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

func (db *MongoDB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
