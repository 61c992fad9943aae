package cli

import (
	"context"
	"fmt"
	"strconv"

	"task-desk/internal/api"
	"task-desk/internal/domain"
	"task-desk/internal/errors"
)

// DoneCommand handles the done command (completion toggle)
type DoneCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command. An unknown task id is a silent no-op; the
// dashboard is re-rendered either way.
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args, "done")
	if err != nil {
		return err
	}

	task, err := c.api.ToggleCompletion(ctx, id)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if task != nil {
		if task.Completed {
			fmt.Fprintf(c.app.out, "Completed: %s\n\n", task.Name)
		} else {
			fmt.Fprintf(c.app.out, "Reopened: %s\n\n", task.Name)
		}
	}
	return c.app.renderDashboard(ctx, domain.ViewDashboard)
}

// parseTaskID parses the single task id argument of a mutation command.
func parseTaskID(args []string, command string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.NewInvalidInputError("command", command, fmt.Sprintf("usage: td %s <task-id>", command))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("task_id", args[0], "must be an integer")
	}
	return id, nil
}
