package config

import (
	"fmt"
	"os"

	"task-desk/internal/storage"
)

// CreateStore creates a persistent store instance using the configuration
// system, creating the database directory if needed.
func CreateStore(config *Config) (storage.Store, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := storage.New(config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() storage.Store {
	return storage.NewMemoryStore()
}
