package store

import (
	"context"
	"errors"
)

// Document is a schemaless record as returned by the backing store.
type Document map[string]any

var (
	// ErrUnavailable reports that the backing store cannot be reached.
	ErrUnavailable = errors.New("store unavailable")
	// ErrWriteFailed reports an insert that failed for a reason other
	// than connectivity.
	ErrWriteFailed = errors.New("store write failed")
)

// Store is the minimal collection-oriented persistence surface the API
// depends on. Implementations must be safe for concurrent use; an empty
// Find result is not an error.
type Store interface {
	Insert(ctx context.Context, collection string, record any) (string, error)
	Find(ctx context.Context, collection string, filter Predicate, limit int64) ([]Document, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
