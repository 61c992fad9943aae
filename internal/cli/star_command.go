package cli

import (
	"context"
	"fmt"

	"task-desk/internal/api"
	"task-desk/internal/domain"
)

// StarCommand handles the star command (importance toggle)
type StarCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewStarCommand creates a new star command handler
func NewStarCommand(app *App) *StarCommand {
	return &StarCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the star command. An unknown task id is a silent no-op; the
// dashboard is re-rendered either way.
func (c *StarCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args, "star")
	if err != nil {
		return err
	}

	task, err := c.api.ToggleImportance(ctx, id)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if task != nil {
		if task.Important {
			fmt.Fprintf(c.app.out, "Starred: %s\n\n", task.Name)
		} else {
			fmt.Fprintf(c.app.out, "Unstarred: %s\n\n", task.Name)
		}
	}
	return c.app.renderDashboard(ctx, domain.ViewDashboard)
}
