package accounts

import (
	"context"

	"task-desk/internal/domain"
	"task-desk/internal/errors"
	"task-desk/internal/repository/kv"
	"task-desk/internal/validation"
)

// Service handles account registration, authentication and the session.
type Service interface {
	// Signup registers a new account and initializes its empty task list.
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)

	// Login authenticates against the stored user list and sets the session.
	Login(ctx context.Context, username, password string) (*domain.User, error)

	// Logout clears the session. Logging out with no session is a no-op.
	Logout(ctx context.Context) error

	// Current resolves the session username to its stored user record.
	// Returns nil with no error when there is no session.
	Current(ctx context.Context) (*domain.User, error)
}

// serviceImpl implements the Service interface
type serviceImpl struct {
	repo      kv.Repository
	validator *validation.CredentialsValidator
}

// NewService creates a new account service over the given repository
func NewService(repo kv.Repository) Service {
	return &serviceImpl{
		repo:      repo,
		validator: validation.NewCredentialsValidator(),
	}
}

// findUser searches the user list for an exact username match.
// Matching is case-sensitive.
func findUser(users []domain.User, username string) *domain.User {
	for i := range users {
		if users[i].Username == username {
			return &users[i]
		}
	}
	return nil
}

// Signup registers a new account. A taken username fails with a conflict
// error and leaves storage unchanged; otherwise the user record is appended
// and an empty task sequence is created under the username.
func (s *serviceImpl) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := s.validator.ValidateSignup(username, email, password); err != nil {
		return nil, errors.NewValidationError("invalid signup details", err)
	}

	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	if findUser(users, username) != nil {
		return nil, errors.NewConflictError("user", username,
			"Username already taken. Please choose another one.")
	}

	user := domain.NewUser(username, email, password)
	users = append(users, user)
	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return nil, err
	}

	// Every account starts with an empty task list
	taskMap, err := s.repo.LoadTaskMap(ctx)
	if err != nil {
		return nil, err
	}
	taskMap[username] = []domain.Task{}
	if err := s.repo.SaveTaskMap(ctx, taskMap); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login authenticates the user. On a match the session is set to the
// username; on a mismatch nothing is stored.
func (s *serviceImpl) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if err := s.validator.ValidateLogin(username, password); err != nil {
		return nil, errors.NewValidationError("invalid login details", err)
	}

	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			if err := s.repo.SetCurrentUser(ctx, username); err != nil {
				return nil, err
			}
			return &users[i], nil
		}
	}

	return nil, errors.NewUnauthorizedError("Invalid username or password.")
}

// Logout clears the session value.
func (s *serviceImpl) Logout(ctx context.Context) error {
	return s.repo.ClearCurrentUser(ctx)
}

// Current resolves the session to a user record. A session pointing at a
// username missing from the user list resolves to nil, not an error.
func (s *serviceImpl) Current(ctx context.Context) (*domain.User, error) {
	username, ok, err := s.repo.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}
	return findUser(users, username), nil
}
