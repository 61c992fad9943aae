package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"task-desk/internal/api"
	"task-desk/internal/domain"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command. Deletion is gated by a confirmation
// prompt; anything but an explicit yes cancels and leaves state unchanged.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args, "delete")
	if err != nil {
		return err
	}

	fmt.Fprint(c.app.out, "Are you sure you want to delete this task? [y/N]: ")

	reader := bufio.NewReader(c.app.in)
	input, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(input))
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(c.app.out, "Delete cancelled.")
		return nil
	}

	removed, err := c.api.DeleteTask(ctx, id)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if removed {
		fmt.Fprintf(c.app.out, "Deleted task #%d.\n\n", id)
	}
	return c.app.renderDashboard(ctx, domain.ViewDashboard)
}
