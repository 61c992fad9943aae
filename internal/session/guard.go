package session

import (
	"context"

	"task-desk/internal/errors"
	"task-desk/internal/repository/kv"
)

// protectedCommands is the set of commands that require a logged-in user:
// the dashboard surface and everything that mutates a task list.
var protectedCommands = map[string]bool{
	"dashboard": true,
	"add":       true,
	"done":      true,
	"star":      true,
	"delete":    true,
	"whoami":    true,
}

// Guard is the only access-control mechanism: it resolves the session before
// a protected command runs and stops the command when there is none. It is
// local-side and deliberately not a security boundary.
type Guard struct {
	repo kv.Repository
}

// NewGuard creates a new session guard over the given repository
func NewGuard(repo kv.Repository) *Guard {
	return &Guard{repo: repo}
}

// IsProtected reports whether the named command requires a session.
func IsProtected(command string) bool {
	return protectedCommands[command]
}

// RequireUser returns the session username, or an unauthorized error
// directing the user to log in when no session is set.
func (g *Guard) RequireUser(ctx context.Context) (string, error) {
	username, ok, err := g.repo.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.NewUnauthorizedError("You are not logged in. Run 'td login' first.")
	}
	return username, nil
}

// CurrentUsername returns the session username and whether a session is set,
// without failing when there is none.
func (g *Guard) CurrentUsername(ctx context.Context) (string, bool, error) {
	return g.repo.CurrentUser(ctx)
}
