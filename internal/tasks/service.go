package tasks

import (
	"context"
	"sort"
	"time"

	"task-desk/internal/domain"
	"task-desk/internal/errors"
	"task-desk/internal/repository/kv"
	"task-desk/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Service handles per-user task list operations.
type Service interface {
	// ListForUser returns the user's tasks filtered by view. An absent user
	// entry yields an empty list, never an error.
	ListForUser(ctx context.Context, username string, view domain.View) ([]domain.Task, error)

	// Add appends a new task to the user's list. The id is the creation
	// timestamp in milliseconds.
	Add(ctx context.Context, username, name, description, dueDate string) (*domain.Task, error)

	// ToggleCompletion flips the completed flag of the task with the given
	// id. Returns the updated task, or nil when the id is not found.
	ToggleCompletion(ctx context.Context, username string, id int64) (*domain.Task, error)

	// ToggleImportance flips the important flag of the task with the given
	// id. Returns the updated task, or nil when the id is not found.
	ToggleImportance(ctx context.Context, username string, id int64) (*domain.Task, error)

	// Delete removes the task with the given id. Reports whether a task was
	// removed; an unknown id leaves the list unchanged.
	Delete(ctx context.Context, username string, id int64) (bool, error)
}

// serviceImpl implements the Service interface
type serviceImpl struct {
	repo      kv.Repository
	validator *validation.TaskValidator
}

// NewService creates a new task service over the given repository
func NewService(repo kv.Repository) Service {
	return &serviceImpl{
		repo:      repo,
		validator: validation.NewTaskValidator(),
	}
}

// newTaskID derives a task id from the creation time, like the stored ids
// always have been. Two tasks created within the same millisecond would
// collide; that window is accepted, not guarded.
func newTaskID() int64 {
	return timeNow().UnixMilli()
}

// ListForUser returns the filtered task list for the user.
func (s *serviceImpl) ListForUser(ctx context.Context, username string, view domain.View) ([]domain.Task, error) {
	if !view.IsValid() {
		return nil, errors.NewInvalidInputError("view", view.String(), "unknown view")
	}

	taskMap, err := s.repo.LoadTaskMap(ctx)
	if err != nil {
		return nil, err
	}

	// Absent entry falls back to an empty list
	userTasks := taskMap[username]

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
		// Ascending by parsed date; the stable sort keeps insertion order
		// on ties and pins unparseable dates (zero time) first.
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

// Add validates the fields, appends the new task to the user's list and
// persists the mapping.
func (s *serviceImpl) Add(ctx context.Context, username, name, description, dueDate string) (*domain.Task, error) {
	if err := s.validator.ValidateTaskForCreation(name, dueDate); err != nil {
		return nil, errors.NewValidationError("Task name is required.", err)
	}

	cleanedName, err := s.validator.GetValidTaskName(name)
	if err != nil {
		return nil, errors.NewValidationError("Task name is required.", err)
	}

	taskMap, err := s.repo.LoadTaskMap(ctx)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(newTaskID(), cleanedName, description, dueDate)
	taskMap[username] = append(taskMap[username], task)
	if err := s.repo.SaveTaskMap(ctx, taskMap); err != nil {
		return nil, err
	}

	return &task, nil
}

// ToggleCompletion flips the completed flag of the matching task.
func (s *serviceImpl) ToggleCompletion(ctx context.Context, username string, id int64) (*domain.Task, error) {
	return s.toggle(ctx, username, id, func(task *domain.Task) {
		task.Completed = !task.Completed
	})
}

// ToggleImportance flips the important flag of the matching task.
func (s *serviceImpl) ToggleImportance(ctx context.Context, username string, id int64) (*domain.Task, error) {
	return s.toggle(ctx, username, id, func(task *domain.Task) {
		task.Important = !task.Important
	})
}

// toggle locates the task by id, applies the mutation and persists. An
// unknown id is a silent no-op: nothing changes and nothing is reported.
func (s *serviceImpl) toggle(ctx context.Context, username string, id int64, mutate func(*domain.Task)) (*domain.Task, error) {
	taskMap, err := s.repo.LoadTaskMap(ctx)
	if err != nil {
		return nil, err
	}

	userTasks := taskMap[username]
	for i := range userTasks {
		if userTasks[i].ID == id {
			mutate(&userTasks[i])
			taskMap[username] = userTasks
			if err := s.repo.SaveTaskMap(ctx, taskMap); err != nil {
				return nil, err
			}
			task := userTasks[i]
			return &task, nil
		}
	}

	return nil, nil
}

// Delete removes the task with the given id using filter-out semantics: an
// unknown id leaves the sequence unchanged.
func (s *serviceImpl) Delete(ctx context.Context, username string, id int64) (bool, error) {
	taskMap, err := s.repo.LoadTaskMap(ctx)
	if err != nil {
		return false, err
	}

	userTasks := taskMap[username]
	remaining := make([]domain.Task, 0, len(userTasks))
	for _, task := range userTasks {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}

	removed := len(remaining) != len(userTasks)
	taskMap[username] = remaining
	if err := s.repo.SaveTaskMap(ctx, taskMap); err != nil {
		return false, err
	}

	return removed, nil
}
