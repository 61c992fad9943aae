package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"task-desk/internal/api"
	"task-desk/internal/config"
	"task-desk/internal/session"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A local task-management application",
		Long: `Task Desk (td) is a local task-management application: sign up, log in,
and manage a personal list of tasks.

FEATURES:
  • Per-user task lists with a single local database
  • Dashboard, calendar and important views
  • Complete, star and delete tasks with confirmation
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  td signup alice a@example.com secret     # Register a new account
  td login alice secret                    # Log in and show the dashboard
  td add "Buy milk" --due 2024-01-01       # Add a task with a due date
  td dashboard                             # Show all tasks
  td dashboard important                   # Show starred tasks only
  td dashboard calendar                    # Show tasks with due dates, by date
  td done 1700000000000                    # Toggle a task's completion
  td star 1700000000000                    # Toggle a task's importance
  td delete 1700000000000                  # Delete a task (asks first)
  td whoami                                # Show the logged-in account
  td logout                                # Clear the session

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TD_DB_DIR                              Database directory (default: ~/.td)
    TD_DB_FILENAME                         Database filename (default: td.db)
    TD_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TD_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Display Configuration:
    TD_DISPLAY_NO_COLOR                    Disable colored output (default: false)
    TD_DISPLAY_DATE_FORMAT                 Due date format (default: 2006-01-02)

  Validation Configuration:
    TD_VALIDATION_TASK_NAME_MIN            Min task name length (default: 1)
    TD_VALIDATION_TASK_NAME_MAX            Max task name length (default: 255)

  Application Configuration:
    TD_APP_TIMEOUT                         Application timeout (default: 60s)
    TD_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  td [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// guardCommand enforces the session guard for protected commands before
// their handler runs; unprotected commands pass through.
func (r *RootCommand) guardCommand(ctx context.Context, name string) error {
	if !session.IsProtected(name) {
		return nil
	}
	if _, err := r.api.CurrentUser(ctx); err != nil {
		return NewErrorHandler().HandleSimple(err)
	}
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TD_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TD_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TD_DB_WRITE_TIMEOUT)")

	// Display configuration
	flags.Bool("no-color", false, "Disable colored output (overrides TD_DISPLAY_NO_COLOR)")
	flags.String("date-format", "", "Due date display format (overrides TD_DISPLAY_DATE_FORMAT)")

	// Validation configuration
	flags.Int("task-name-min-length", 0, "Minimum task name length (overrides TD_VALIDATION_TASK_NAME_MIN)")
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TD_VALIDATION_TASK_NAME_MAX)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TD_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TD_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Signup command
	signupCmd := &cobra.Command{
		Use:   "signup <username> <email> <password>",
		Short: "Register a new account",
		Long:  "Register a new account. Usernames are unique; every new account starts with an empty task list.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			signupHandler := NewSignupCommand(NewAppWithConfig(r.api, r.config))
			return signupHandler.Execute(ctx, args)
		},
	}

	// Login command
	loginCmd := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and show the dashboard",
		Long:  "Authenticate against the stored accounts. On success the session is set and the dashboard is shown.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			loginHandler := NewLoginCommand(NewAppWithConfig(r.api, r.config))
			return loginHandler.Execute(ctx, args)
		},
	}

	// Logout command
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			logoutHandler := NewLogoutCommand(NewAppWithConfig(r.api, r.config))
			return logoutHandler.Execute(ctx, args)
		},
	}

	// Whoami command
	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			if err := r.guardCommand(ctx, "whoami"); err != nil {
				return err
			}
			whoamiHandler := NewWhoamiCommand(NewAppWithConfig(r.api, r.config))
			return whoamiHandler.Execute(ctx, args)
		},
	}

	// Add command
	addCmd := &cobra.Command{
		Use:   "add <task name>",
		Short: "Add a new task",
		Long: `Add a new task to the logged-in user's list. The name is required;
description and due date are optional.

Examples:
  td add "Buy milk"
  td add "File taxes" --due 2024-04-15
  td add "Call home" --description "Sunday evening"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			if err := r.guardCommand(ctx, "add"); err != nil {
				return err
			}
			addHandler := NewAddCommand(NewAppWithConfig(r.api, r.config))
			addHandler.Description, _ = cmd.Flags().GetString("description")
			addHandler.DueDate, _ = cmd.Flags().GetString("due")
			return addHandler.Execute(ctx, args)
		},
	}
	addCmd.Flags().StringP("description", "d", "", "Optional task description")
	addCmd.Flags().String("due", "", "Optional due date (YYYY-MM-DD)")

	// Dashboard command
	dashboardCmd := &cobra.Command{
		Use:   "dashboard [view]",
		Short: "Show the task list",
		Long: `Show the logged-in user's task list. The view defaults to dashboard
(all tasks) and is not remembered between invocations.

Views (matched case-insensitively, by substring):
  dashboard   All tasks, in the order they were added
  important   Starred tasks only
  calendar    Tasks with a due date, ascending by date

Examples:
  td dashboard
  td dashboard important
  td dashboard calendar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			if err := r.guardCommand(ctx, "dashboard"); err != nil {
				return err
			}
			dashboardHandler := NewDashboardCommand(NewAppWithConfig(r.api, r.config))
			return dashboardHandler.Execute(ctx, args)
		},
	}

	// Done command
	doneCmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			if err := r.guardCommand(ctx, "done"); err != nil {
				return err
			}
			doneHandler := NewDoneCommand(NewAppWithConfig(r.api, r.config))
			return doneHandler.Execute(ctx, args)
		},
	}

	// Star command
	starCmd := &cobra.Command{
		Use:   "star <task-id>",
		Short: "Toggle a task's importance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			if err := r.guardCommand(ctx, "star"); err != nil {
				return err
			}
			starHandler := NewStarCommand(NewAppWithConfig(r.api, r.config))
			return starHandler.Execute(ctx, args)
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Long: `Delete a task from the logged-in user's list.

This operation cannot be undone. You will be asked to confirm before
anything is deleted; anything but an explicit yes cancels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Delete waits on user confirmation and may need longer
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			if err := r.guardCommand(ctx, "delete"); err != nil {
				return err
			}
			deleteHandler := NewDeleteCommand(NewAppWithConfig(r.api, r.config))
			return deleteHandler.Execute(ctx, args)
		},
	}

	// Add all subcommands to root
	r.cmd.AddCommand(
		signupCmd,
		loginCmd,
		logoutCmd,
		whoamiCmd,
		addCmd,
		dashboardCmd,
		doneCmd,
		starCmd,
		deleteCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Database configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	// Display configuration
	if noColor, _ := flags.GetBool("no-color"); noColor {
		r.config.Display.NoColor = noColor
	}
	if dateFormat, _ := flags.GetString("date-format"); dateFormat != "" {
		r.config.Display.DateFormat = dateFormat
	}

	// Validation configuration
	if taskNameMinLength, _ := flags.GetInt("task-name-min-length"); taskNameMinLength > 0 {
		r.config.Validation.TaskNameMinLength = taskNameMinLength
	}
	if taskNameMaxLength, _ := flags.GetInt("task-name-max-length"); taskNameMaxLength > 0 {
		r.config.Validation.TaskNameMaxLength = taskNameMaxLength
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
