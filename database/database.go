package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// InsertResult, UpdateResult and DeleteResult mirror the acknowledgements the
// document driver returns so they can be forwarded to callers unchanged.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Collection is the set of document operations the handlers need.
// FindOne returns a nil document and a nil error when nothing matches.
type Collection interface {
	Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error)
	FindOne(ctx context.Context, filter bson.M) (bson.M, error)
	InsertOne(ctx context.Context, doc bson.M) (*InsertResult, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M, upsert bool) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error)
	DeleteMany(ctx context.Context, filter bson.M) (*DeleteResult, error)
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
}

// Store hands out collections of one database.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
