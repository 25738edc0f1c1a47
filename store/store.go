// Package store provides a minimal document-collection abstraction over
// the external database. Handlers and repositories only ever see this
// interface; the store's internals are not part of the service's core.
package store

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrNotFound is returned when no document matches the identifier.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable is the single failure path for a store that could not
	// be reached or initialized at startup.
	ErrUnavailable = errors.New("document store not available")
)

// Document is a raw stored document together with its assigned identifier.
type Document struct {
	ID  string
	Raw json.RawMessage
}

// Store is a name-agnostic document collection. Identifiers are
// store-assigned UUID strings.
type Store interface {
	FindOne(ctx context.Context, collection, id string) (json.RawMessage, error)
	FindAll(ctx context.Context, collection string) ([]Document, error)
	InsertOne(ctx context.Context, collection string, doc any) (string, error)
	InsertMany(ctx context.Context, collection string, docs []any) error
	CountAll(ctx context.Context, collection string) (int64, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Name() string
}
