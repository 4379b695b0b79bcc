package port

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key in a single operation
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
