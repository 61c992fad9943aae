package cli

import (
	"context"
	"io"
	"os"

	"task-desk/internal/api"
	"task-desk/internal/config"
	"task-desk/internal/dashboard"
	"task-desk/internal/domain"
)

// App represents the main CLI application. Output and input are injectable
// so command handlers can be tested against buffers.
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
	in     io.Reader
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API) *App {
	return &App{
		api:    apiInstance,
		config: config.NewConfig(),
		out:    os.Stdout,
		in:     os.Stdin,
	}
}

// NewAppWithConfig creates a new CLI application instance with the given configuration
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	app := NewApp(apiInstance)
	if cfg != nil {
		app.config = cfg
	}
	return app
}

// WithOutput returns the app writing to the given writer
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithInput returns the app reading interactive input from the given reader
func (a *App) WithInput(r io.Reader) *App {
	a.in = r
	return a
}

// theme returns the dashboard theme respecting the no-color setting
func (a *App) theme() dashboard.Theme {
	if a.config != nil && a.config.Display.NoColor {
		return dashboard.NewPlainTheme()
	}
	return dashboard.NewTheme()
}

// renderDashboard rebuilds and prints the whole dashboard for the given
// view. Every mutation re-renders through here; there is no partial update.
func (a *App) renderDashboard(ctx context.Context, view domain.View) error {
	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		return err
	}

	tasks, err := a.api.ListTasks(ctx, view)
	if err != nil {
		return err
	}

	renderer := dashboard.NewRenderer(a.out, a.theme())
	renderer.Render(user, view, dashboard.BuildRows(tasks))
	return nil
}
