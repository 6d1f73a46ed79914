// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent
var ErrNotFound = errors.New("storage: key not found")

// Store is the key-value byte store the cart persists through. Callers
// treat absence and corruption as an empty-cart signal, never as a
// fatal error, so implementations only need best-effort durability.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
