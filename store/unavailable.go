package store

import (
	"context"
	"encoding/json"
)

var _ Store = unavailable{}

type unavailable struct{}

// Unavailable returns a Store whose every operation fails with
// ErrUnavailable. It stands in for the database when the connection could
// not be established at startup, so the service can still boot and serve
// its diagnostic endpoint.
func Unavailable() Store {
	return unavailable{}
}

func (unavailable) FindOne(context.Context, string, string) (json.RawMessage, error) {
	return nil, ErrUnavailable
}

func (unavailable) FindAll(context.Context, string) ([]Document, error) {
	return nil, ErrUnavailable
}

func (unavailable) InsertOne(context.Context, string, any) (string, error) {
	return "", ErrUnavailable
}

func (unavailable) InsertMany(context.Context, string, []any) error {
	return ErrUnavailable
}

func (unavailable) CountAll(context.Context, string) (int64, error) {
	return 0, ErrUnavailable
}

func (unavailable) ListCollectionNames(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (unavailable) Ping(context.Context) error {
	return ErrUnavailable
}

func (unavailable) Name() string {
	return ""
}
