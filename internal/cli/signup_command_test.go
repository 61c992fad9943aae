package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCommand_Execute(t *testing.T) {
	t.Run("should register and print the login hint", func(t *testing.T) {
		app, mock, buf := setupTestApp(t)
		cmd := NewSignupCommand(app)

		err := cmd.Execute(context.Background(), []string{"alice", "alice@example.com", "secret"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Sign up successful! Please log in with 'td login alice <password>'.")
		assert.Len(t, mock.users, 1)
		assert.Empty(t, mock.currentUser)
	})

	t.Run("should reject a taken username", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		cmd := NewSignupCommand(app)
		ctx := context.Background()

		require.NoError(t, cmd.Execute(ctx, []string{"alice", "alice@example.com", "secret"}))

		err := cmd.Execute(ctx, []string{"alice", "other@example.com", "different"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Username already taken")
		assert.Len(t, mock.users, 1)
	})

	t.Run("should reject wrong argument counts", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		cmd := NewSignupCommand(app)
		ctx := context.Background()

		err := cmd.Execute(ctx, []string{"alice"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: td signup")

		err = cmd.Execute(ctx, []string{"alice", "a@example.com", "secret", "extra"})
		assert.Error(t, err)
	})
}

func TestNewSignupCommand(t *testing.T) {
	app, _, _ := setupTestApp(t)
	cmd := NewSignupCommand(app)

	assert.NotNil(t, cmd)
	assert.NotNil(t, cmd.api)
	assert.NotNil(t, cmd.errorHandler)
}
