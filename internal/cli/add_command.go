package cli

import (
	"context"
	"fmt"
	"strings"

	"task-desk/internal/api"
	"task-desk/internal/domain"
	"task-desk/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler

	// Optional fields, set from flags
	Description string
	DueDate     string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. On success the dashboard is printed, like
// the page redirect it replaces; on failure nothing is stored.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: td add \"task name\" [--description text] [--due YYYY-MM-DD]")
	}
	name := strings.Join(args, " ")

	task, err := c.api.AddTask(ctx, name, c.Description, c.DueDate)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	fmt.Fprintf(c.app.out, "Added task: %s\n\n", task.Name)
	return c.app.renderDashboard(ctx, domain.ViewDashboard)
}
