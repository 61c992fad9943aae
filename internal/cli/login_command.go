package cli

import (
	"context"
	"fmt"

	"task-desk/internal/api"
	"task-desk/internal/domain"
	"task-desk/internal/errors"
)

// LoginCommand handles the login command
type LoginCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the login command. A successful login lands on the dashboard,
// like the page redirect it replaces.
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "login", "usage: td login <username> <password>")
	}

	user, err := c.api.Login(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("log in", err)
	}

	fmt.Fprintf(c.app.out, "Logged in as %s.\n\n", user.Username)
	return c.app.renderDashboard(ctx, domain.ViewDashboard)
}
