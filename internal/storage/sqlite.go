package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"task-desk/internal/errors"
	"task-desk/internal/logging"
	"task-desk/internal/storage/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface on top of a single-table SQLite
// database. Reads and writes are synchronous; each Set is one statement.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite-backed store at the given path.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get deserializes the value stored under key into dest and reports whether
// the key was present.
func (s *SQLiteStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	query := `SELECT value FROM kv_store WHERE key = ?`

	var raw string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if err == sql.ErrNoRows {
		logging.Debugf("storage: get %q -> absent\n", key)
		return false, nil
	}
	if err != nil {
		return false, errors.NewStorageError("get "+key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, errors.NewStorageError("decode "+key, err)
	}

	logging.Debugf("storage: get %q -> %d bytes\n", key, len(raw))
	return true, nil
}

// Set serializes value and stores it under key, overwriting any previous
// value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.NewStorageError("encode "+key, err)
	}

	query := `
	INSERT INTO kv_store (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, key, string(raw)); err != nil {
		return errors.NewStorageError("set "+key, err)
	}

	logging.Debugf("storage: set %q (%d bytes)\n", key, len(raw))
	return nil
}

// Delete removes the value stored under key.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return errors.NewStorageError("delete "+key, err)
	}

	logging.Debugf("storage: delete %q\n", key)
	return nil
}
