package cli

import (
	"context"
	"fmt"

	"task-desk/internal/api"
)

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the whoami command
func (c *WhoamiCommand) Execute(ctx context.Context, args []string) error {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if user.Email != "" {
		fmt.Fprintf(c.app.out, "%s <%s>\n", user.Username, user.Email)
	} else {
		fmt.Fprintln(c.app.out, user.Username)
	}
	return nil
}
