package cli

import (
	"context"
	"fmt"

	"task-desk/internal/api"
	"task-desk/internal/errors"
)

// SignupCommand handles the signup command
type SignupCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewSignupCommand creates a new signup command handler
func NewSignupCommand(app *App) *SignupCommand {
	return &SignupCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the signup command
func (c *SignupCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("command", "signup", "usage: td signup <username> <email> <password>")
	}

	user, err := c.api.Signup(ctx, args[0], args[1], args[2])
	if err != nil {
		return c.errorHandler.Handle("sign up", err)
	}

	fmt.Fprintf(c.app.out, "Sign up successful! Please log in with 'td login %s <password>'.\n", user.Username)
	return nil
}
