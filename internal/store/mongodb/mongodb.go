package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/athly-global/athly-api/internal/store"
)

const connectTimeout = 10 * time.Second

// Store persists documents in a MongoDB database, one collection per
// record kind.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, collection string, record any) (string, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		if isUnavailable(err) {
			return "", fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		return "", fmt.Errorf("%w: %v", store.ErrWriteFailed, err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		return id.Hex(), nil
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter store.Predicate, limit int64) ([]store.Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filterFor(filter), options.Find().SetLimit(limit))
	if err != nil {
		if isUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		if isUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		return nil, err
	}

	docs := make([]store.Document, 0, len(raw))
	for _, doc := range raw {
		// Surface identifiers as plain strings.
		if id, ok := doc["_id"].(primitive.ObjectID); ok {
			doc["_id"] = id.Hex()
		}
		docs = append(docs, store.Document(doc))
	}
	return docs, nil
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		if isUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		return nil, err
	}
	return names, nil
}

func isUnavailable(err error) bool {
	return mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded)
}
