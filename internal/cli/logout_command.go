package cli

import (
	"context"
	"fmt"

	"task-desk/internal/api"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the logout command. Logging out with no session is a no-op.
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	if err := c.api.Logout(ctx); err != nil {
		return c.errorHandler.Handle("log out", err)
	}

	fmt.Fprintln(c.app.out, "Logged out.")
	return nil
}
