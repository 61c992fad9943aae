package kv

import (
	"context"

	"task-desk/internal/domain"
	"task-desk/internal/storage"
)

// Storage keys. The persisted layout is fixed: users is a JSON array of user
// records, tasks maps usernames to task arrays, currentUser is a bare
// username string.
const (
	KeyUsers       = "users"
	KeyTasks       = "tasks"
	KeyCurrentUser = "currentUser"
)

// Repository defines the typed operations over the key-value store
type Repository interface {
	// User list operations
	LoadUsers(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error

	// Task mapping operations
	LoadTaskMap(ctx context.Context) (map[string][]domain.Task, error)
	SaveTaskMap(ctx context.Context, tasks map[string][]domain.Task) error

	// Session operations
	CurrentUser(ctx context.Context) (string, bool, error)
	SetCurrentUser(ctx context.Context, username string) error
	ClearCurrentUser(ctx context.Context) error

	// Utility
	Close() error
}

// KVRepository implements the Repository interface over a storage.Store
type KVRepository struct {
	store storage.Store
}

// New creates a new repository over the given store
func New(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

// Close closes the underlying store
func (r *KVRepository) Close() error {
	return r.store.Close()
}

// LoadUsers returns the stored user list, or an empty list when none has
// been stored yet.
func (r *KVRepository) LoadUsers(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if _, err := r.store.Get(ctx, KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers persists the user list, replacing the stored value.
func (r *KVRepository) SaveUsers(ctx context.Context, users []domain.User) error {
	return r.store.Set(ctx, KeyUsers, users)
}

// LoadTaskMap returns the stored task mapping, or an empty mapping when none
// has been stored yet.
func (r *KVRepository) LoadTaskMap(ctx context.Context) (map[string][]domain.Task, error) {
	tasks := map[string][]domain.Task{}
	if _, err := r.store.Get(ctx, KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveTaskMap persists the task mapping, replacing the stored value.
func (r *KVRepository) SaveTaskMap(ctx context.Context, tasks map[string][]domain.Task) error {
	return r.store.Set(ctx, KeyTasks, tasks)
}

// CurrentUser returns the session username and whether a session is set.
func (r *KVRepository) CurrentUser(ctx context.Context) (string, bool, error) {
	var username string
	found, err := r.store.Get(ctx, KeyCurrentUser, &username)
	if err != nil {
		return "", false, err
	}
	if !found || username == "" {
		return "", false, nil
	}
	return username, true, nil
}

// SetCurrentUser sets the session to the given username.
func (r *KVRepository) SetCurrentUser(ctx context.Context, username string) error {
	return r.store.Set(ctx, KeyCurrentUser, username)
}

// ClearCurrentUser removes the session value.
func (r *KVRepository) ClearCurrentUser(ctx context.Context) error {
	return r.store.Delete(ctx, KeyCurrentUser)
}
