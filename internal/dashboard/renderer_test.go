package dashboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-desk/internal/domain"
)

// renderPlain renders with the unstyled theme so assertions see bare text.
func renderPlain(user *domain.User, view domain.View, rows []Row) string {
	var buf bytes.Buffer
	NewRenderer(&buf, NewPlainTheme()).Render(user, view, rows)
	return buf.String()
}

func TestRenderer_Header(t *testing.T) {
	t.Run("should show username and email", func(t *testing.T) {
		out := renderPlain(&domain.User{Username: "alice", Email: "alice@example.com"}, domain.ViewDashboard, nil)

		lines := strings.Split(out, "\n")
		assert.Equal(t, "alice <alice@example.com>", lines[0])
	})

	t.Run("should show a bare username without email", func(t *testing.T) {
		out := renderPlain(&domain.User{Username: "ghost"}, domain.ViewDashboard, nil)

		lines := strings.Split(out, "\n")
		assert.Equal(t, "ghost", lines[0])
	})

	t.Run("should skip the header for a nil user", func(t *testing.T) {
		out := renderPlain(nil, domain.ViewDashboard, nil)

		lines := strings.Split(out, "\n")
		assert.Equal(t, "dashboard | calendar | important", lines[0])
	})
}

func TestRenderer_Menu(t *testing.T) {
	out := renderPlain(&domain.User{Username: "alice"}, domain.ViewCalendar, nil)

	// All three views appear in menu order regardless of the active one
	assert.Contains(t, out, "dashboard | calendar | important")
}

func TestRenderer_EmptyStates(t *testing.T) {
	tests := []struct {
		name string
		view domain.View
		want string
	}{
		{
			name: "dashboard view",
			view: domain.ViewDashboard,
			want: "You have no tasks yet. Add one to get started!",
		},
		{
			name: "important view",
			view: domain.ViewImportant,
			want: "You have no important tasks.",
		},
		{
			name: "calendar view",
			view: domain.ViewCalendar,
			want: "No tasks with a due date.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderPlain(&domain.User{Username: "alice"}, tt.view, nil)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRenderer_Rows(t *testing.T) {
	user := &domain.User{Username: "alice"}

	t.Run("should render an open task", func(t *testing.T) {
		out := renderPlain(user, domain.ViewDashboard, []Row{
			{ID: 42, Title: "Buy milk"},
		})

		assert.Contains(t, out, "[ ] Buy milk ☆ #42")
	})

	t.Run("should render a completed task with a checked box", func(t *testing.T) {
		out := renderPlain(user, domain.ViewDashboard, []Row{
			{ID: 42, Title: "Buy milk", Completed: true},
		})

		assert.Contains(t, out, "[x] Buy milk ☆ #42")
	})

	t.Run("should render an important task with a filled star", func(t *testing.T) {
		out := renderPlain(user, domain.ViewDashboard, []Row{
			{ID: 42, Title: "Buy milk", Important: true},
		})

		assert.Contains(t, out, "[ ] Buy milk ★ #42")
	})

	t.Run("should render the due date badge", func(t *testing.T) {
		out := renderPlain(user, domain.ViewDashboard, []Row{
			{ID: 42, Title: "File taxes", DueDate: "2024-04-15"},
		})

		assert.Contains(t, out, "[ ] File taxes (2024-04-15) ☆ #42")
	})

	t.Run("should render rows in order and omit the empty message", func(t *testing.T) {
		out := renderPlain(user, domain.ViewDashboard, []Row{
			{ID: 1, Title: "First"},
			{ID: 2, Title: "Second"},
		})

		first := strings.Index(out, "First")
		second := strings.Index(out, "Second")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, second, 0)
		assert.Less(t, first, second)
		assert.NotContains(t, out, "You have no tasks yet.")
	})
}
