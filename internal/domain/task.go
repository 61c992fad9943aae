package domain

import (
	"time"
)

// DueDateFormat is the wire format for task due dates (ISO date, no time part).
const DueDateFormat = "2006-01-02"

// Task represents a task in the domain model.
// The ID is the creation timestamp in milliseconds; DueDate is an ISO date
// string or empty when the task has no due date.
type Task struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
	Important   bool   `json:"important"`
}

// NewTask creates a new Task with the given id and fields.
// New tasks start neither completed nor important.
func NewTask(id int64, name, description, dueDate string) Task {
	return Task{
		ID:          id,
		Name:        name,
		Description: description,
		DueDate:     dueDate,
	}
}

// HasDueDate returns true if the task has a non-empty due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// DueTime parses the due date. The second return value is false when the due
// date is empty or does not parse; callers sorting by date treat such tasks
// as the zero time.
func (t Task) DueTime() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(DueDateFormat, t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID > 0 && t.Name != ""
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
