package dashboard

import (
	"task-desk/internal/domain"
)

// Row is the render-ready projection of one task. Building rows is pure so
// the list content can be tested without a renderer.
type Row struct {
	ID          int64
	Title       string
	Description string
	DueDate     string
	Completed   bool
	Important   bool
}

// BuildRows projects a filtered task list into display rows, preserving the
// list's order.
func BuildRows(tasks []domain.Task) []Row {
	rows := make([]Row, len(tasks))
	for i, task := range tasks {
		rows[i] = Row{
			ID:          task.ID,
			Title:       task.Name,
			Description: task.Description,
			DueDate:     task.DueDate,
			Completed:   task.Completed,
			Important:   task.Important,
		}
	}
	return rows
}

// EmptyMessage returns the view-specific message shown when the filtered
// list is empty.
func EmptyMessage(view domain.View) string {
	switch view {
	case domain.ViewImportant:
		return "You have no important tasks."
	case domain.ViewCalendar:
		return "No tasks with a due date."
	default:
		return "You have no tasks yet. Add one to get started!"
	}
}
