// Package kvstore persists small named JSON documents, the dashboard's local
// state. Two backends exist: Redis for shared deployments and the SQL
// database for single-node ones.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a string-keyed byte store.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
