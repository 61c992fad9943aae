package storage

import (
	"context"
	"encoding/json"
	"sync"

	"task-desk/internal/errors"
)

// MemoryStore implements the Store interface with an in-memory map. It is
// used by tests and keeps the same JSON round-trip as the SQLite store so
// both backends see identical value shapes.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get deserializes the value stored under key into dest and reports whether
// the key was present.
func (s *MemoryStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.NewStorageError("decode "+key, err)
	}
	return true, nil
}

// Set serializes value and stores it under key, overwriting any previous
// value.
func (s *MemoryStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.NewStorageError("encode "+key, err)
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Delete removes the value stored under key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Close releases the store's data.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
	return nil
}
