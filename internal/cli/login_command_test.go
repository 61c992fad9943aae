package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCommand_Execute(t *testing.T) {
	t.Run("should log in and land on the dashboard", func(t *testing.T) {
		app, mock, buf := setupTestApp(t)
		ctx := context.Background()
		_, err := mock.Signup(ctx, "alice", "alice@example.com", "secret")
		require.NoError(t, err)

		cmd := NewLoginCommand(app)
		err = cmd.Execute(ctx, []string{"alice", "secret"})

		require.NoError(t, err)
		assert.Equal(t, "alice", mock.currentUser)

		out := buf.String()
		assert.Contains(t, out, "Logged in as alice.")
		assert.Contains(t, out, "dashboard | calendar | important")
		assert.Contains(t, out, "You have no tasks yet.")
	})

	t.Run("should reject wrong credentials without setting a session", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		ctx := context.Background()
		_, err := mock.Signup(ctx, "alice", "alice@example.com", "secret")
		require.NoError(t, err)

		cmd := NewLoginCommand(app)
		err = cmd.Execute(ctx, []string{"alice", "wrong"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password.")
		assert.Empty(t, mock.currentUser)
	})

	t.Run("should reject an unknown user", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		cmd := NewLoginCommand(app)

		err := cmd.Execute(context.Background(), []string{"nobody", "secret"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password.")
	})

	t.Run("should reject wrong argument counts", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		cmd := NewLoginCommand(app)

		err := cmd.Execute(context.Background(), []string{"alice"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: td login")
	})
}
