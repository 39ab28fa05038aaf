// Package store provides generic document access over named collections.
// All higher layers go through the Store interface; the only concrete
// implementation is backed by MongoDB.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// DefaultLimit is the result cap applied when a caller passes no limit.
const DefaultLimit = 50

var (
	// ErrUnavailable is returned when the adapter has no live connection.
	ErrUnavailable = errors.New("document store unavailable")
)

// Store is the document store adapter contract. Insert and Query surface
// failures immediately; there are no retries or internal timeouts.
type Store interface {
	// Insert writes doc to the named collection and returns the
	// store-assigned identifier as a hex string. The document must not
	// carry an identifier of its own.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Query decodes at most limit documents matching the exact-match
	// filter into out (a pointer to a slice). An empty filter matches
	// everything; no matches decodes an empty slice, not an error.
	Query(ctx context.Context, collection string, filter bson.M, limit int64, out any) error

	// Ping verifies connectivity for diagnostics.
	Ping(ctx context.Context) error

	// Collections lists the collection names in the database.
	Collections(ctx context.Context) ([]string, error)
}
