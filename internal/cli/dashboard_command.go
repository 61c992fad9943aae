package cli

import (
	"context"
	"strings"

	"task-desk/internal/api"
	"task-desk/internal/domain"
	"task-desk/internal/errors"
)

// DashboardCommand handles the dashboard command
type DashboardCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDashboardCommand creates a new dashboard command handler
func NewDashboardCommand(app *App) *DashboardCommand {
	return &DashboardCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the dashboard command. The view defaults to dashboard on
// every invocation and is not persisted; any argument that matches a view
// label (case-insensitive, by substring) switches the view.
func (c *DashboardCommand) Execute(ctx context.Context, args []string) error {
	view := domain.ViewDashboard
	if len(args) > 0 {
		label := strings.Join(args, " ")
		parsed, ok := domain.ParseView(label)
		if !ok {
			return errors.NewInvalidInputError("view", label, "expected dashboard, calendar or important")
		}
		view = parsed
	}

	if err := c.app.renderDashboard(ctx, view); err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	return nil
}
