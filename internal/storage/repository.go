package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// KeyAuthToken holds the raw bearer token between runs.
const KeyAuthToken = "authToken"

// KeyValueStore is the client's persistent local storage. Only the auth
// token is ever written to it.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
