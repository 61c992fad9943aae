package cli

import (
	"context"
	"sort"

	"task-desk/internal/api"
	"task-desk/internal/domain"
	"task-desk/internal/errors"
)

// mockAPI implements the api.API interface for command handler tests. It
// mirrors the real semantics on plain in-memory state, with sequential ids
// so tests can predict them.
type mockAPI struct {
	users       []domain.User
	tasks       map[string][]domain.Task
	currentUser string
	nextID      int64
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		tasks:  make(map[string][]domain.Task),
		nextID: 1,
	}
}

var _ api.API = (*mockAPI)(nil)

func (m *mockAPI) requireUser() (string, error) {
	if m.currentUser == "" {
		return "", errors.NewUnauthorizedError("You are not logged in. Run 'td login' first.")
	}
	return m.currentUser, nil
}

func (m *mockAPI) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return nil, errors.NewConflictError("user", username,
				"Username already taken. Please choose another one.")
		}
	}
	user := domain.NewUser(username, email, password)
	m.users = append(m.users, user)
	m.tasks[username] = []domain.Task{}
	return &user, nil
}

func (m *mockAPI) Login(ctx context.Context, username, password string) (*domain.User, error) {
	for i := range m.users {
		if m.users[i].Username == username && m.users[i].Password == password {
			m.currentUser = username
			return &m.users[i], nil
		}
	}
	return nil, errors.NewUnauthorizedError("Invalid username or password.")
}

func (m *mockAPI) Logout(ctx context.Context) error {
	m.currentUser = ""
	return nil
}

func (m *mockAPI) CurrentUser(ctx context.Context) (*domain.User, error) {
	username, err := m.requireUser()
	if err != nil {
		return nil, err
	}
	for i := range m.users {
		if m.users[i].Username == username {
			return &m.users[i], nil
		}
	}
	return &domain.User{Username: username}, nil
}

func (m *mockAPI) ListTasks(ctx context.Context, view domain.View) ([]domain.Task, error) {
	username, err := m.requireUser()
	if err != nil {
		return nil, err
	}

	userTasks := m.tasks[username]
	switch view {
	case domain.ViewImportant:
		filtered := []domain.Task{}
		for _, task := range userTasks {
			if task.Important {
				filtered = append(filtered, task)
			}
		}
		return filtered, nil
	case domain.ViewCalendar:
		filtered := []domain.Task{}
		for _, task := range userTasks {
			if task.HasDueDate() {
				filtered = append(filtered, task)
			}
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			di, _ := filtered[i].DueTime()
			dj, _ := filtered[j].DueTime()
			return di.Before(dj)
		})
		return filtered, nil
	default:
		filtered := make([]domain.Task, len(userTasks))
		copy(filtered, userTasks)
		return filtered, nil
	}
}

func (m *mockAPI) AddTask(ctx context.Context, name, description, dueDate string) (*domain.Task, error) {
	username, err := m.requireUser()
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.NewValidationError("Task name is required.", nil)
	}

	task := domain.NewTask(m.nextID, name, description, dueDate)
	m.nextID++
	m.tasks[username] = append(m.tasks[username], task)
	return &task, nil
}

func (m *mockAPI) ToggleCompletion(ctx context.Context, id int64) (*domain.Task, error) {
	return m.toggle(id, func(task *domain.Task) {
		task.Completed = !task.Completed
	})
}

func (m *mockAPI) ToggleImportance(ctx context.Context, id int64) (*domain.Task, error) {
	return m.toggle(id, func(task *domain.Task) {
		task.Important = !task.Important
	})
}

func (m *mockAPI) toggle(id int64, mutate func(*domain.Task)) (*domain.Task, error) {
	username, err := m.requireUser()
	if err != nil {
		return nil, err
	}

	userTasks := m.tasks[username]
	for i := range userTasks {
		if userTasks[i].ID == id {
			mutate(&userTasks[i])
			task := userTasks[i]
			return &task, nil
		}
	}
	return nil, nil
}

func (m *mockAPI) DeleteTask(ctx context.Context, id int64) (bool, error) {
	username, err := m.requireUser()
	if err != nil {
		return false, err
	}

	userTasks := m.tasks[username]
	remaining := make([]domain.Task, 0, len(userTasks))
	for _, task := range userTasks {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}
	removed := len(remaining) != len(userTasks)
	m.tasks[username] = remaining
	return removed, nil
}
