package api

import (
	"context"

	"task-desk/internal/accounts"
	"task-desk/internal/domain"
	"task-desk/internal/repository/kv"
	"task-desk/internal/session"
	"task-desk/internal/tasks"
)

// API defines the interface for all account, session and task operations.
// Task operations act on the logged-in user and fail with an unauthorized
// error when there is no session.
type API interface {
	// Account operations
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)

	// Task operations (require a session)
	ListTasks(ctx context.Context, view domain.View) ([]domain.Task, error)
	AddTask(ctx context.Context, name, description, dueDate string) (*domain.Task, error)
	ToggleCompletion(ctx context.Context, id int64) (*domain.Task, error)
	ToggleImportance(ctx context.Context, id int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
}

type apiImpl struct {
	accountService accounts.Service
	taskService    tasks.Service
	guard          *session.Guard
}

// New creates a new API instance over the given repository.
func New(repo kv.Repository) API {
	return &apiImpl{
		accountService: accounts.NewService(repo),
		taskService:    tasks.NewService(repo),
		guard:          session.NewGuard(repo),
	}
}

func (a *apiImpl) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	return a.accountService.Signup(ctx, username, email, password)
}

func (a *apiImpl) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return a.accountService.Login(ctx, username, password)
}

func (a *apiImpl) Logout(ctx context.Context) error {
	return a.accountService.Logout(ctx)
}

// CurrentUser returns the logged-in user's record. A session naming a
// username missing from the user list falls back to a record carrying just
// the username, matching the dashboard header's tolerant lookup.
func (a *apiImpl) CurrentUser(ctx context.Context) (*domain.User, error) {
	username, err := a.guard.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	user, err := a.accountService.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &domain.User{Username: username}, nil
	}
	return user, nil
}

func (a *apiImpl) ListTasks(ctx context.Context, view domain.View) ([]domain.Task, error) {
	username, err := a.guard.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	return a.taskService.ListForUser(ctx, username, view)
}

func (a *apiImpl) AddTask(ctx context.Context, name, description, dueDate string) (*domain.Task, error) {
	username, err := a.guard.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	return a.taskService.Add(ctx, username, name, description, dueDate)
}

func (a *apiImpl) ToggleCompletion(ctx context.Context, id int64) (*domain.Task, error) {
	username, err := a.guard.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	return a.taskService.ToggleCompletion(ctx, username, id)
}

func (a *apiImpl) ToggleImportance(ctx context.Context, id int64) (*domain.Task, error) {
	username, err := a.guard.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	return a.taskService.ToggleImportance(ctx, username, id)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) (bool, error) {
	username, err := a.guard.RequireUser(ctx)
	if err != nil {
		return false, err
	}
	return a.taskService.Delete(ctx, username, id)
}
