package storage

import (
	"context"
)

// Store defines the key-value storage port. Values are JSON documents keyed
// by plain strings; Get reports whether the key was present so callers can
// fall back to a default, and Set overwrites unconditionally. There is no
// transaction spanning keys: concurrent writers are last-write-wins at the
// granularity of a whole value.
type Store interface {
	// Get deserializes the value stored under key into dest and reports
	// whether the key was present. dest is left untouched for absent keys.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set serializes value and stores it under key, overwriting any
	// previous value.
	Set(ctx context.Context, key string, value interface{}) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
