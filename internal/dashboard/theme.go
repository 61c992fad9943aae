package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles for the dashboard.
type Theme struct {
	Header       lipgloss.Style
	Email        lipgloss.Style
	MenuActive   lipgloss.Style
	MenuInactive lipgloss.Style
	Title        lipgloss.Style
	Completed    lipgloss.Style
	DueDate      lipgloss.Style
	Star         lipgloss.Style
	TaskID       lipgloss.Style
	Empty        lipgloss.Style
}

// NewTheme returns the default colored theme.
func NewTheme() Theme {
	return Theme{
		Header:       lipgloss.NewStyle().Bold(true),
		Email:        lipgloss.NewStyle().Faint(true),
		MenuActive:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("212")),
		MenuInactive: lipgloss.NewStyle().Faint(true),
		Title:        lipgloss.NewStyle(),
		Completed:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		DueDate:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Star:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		TaskID:       lipgloss.NewStyle().Faint(true),
		Empty:        lipgloss.NewStyle().Italic(true).Faint(true),
	}
}

// NewPlainTheme returns a theme with no styling, for no-color output.
func NewPlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Header:       plain,
		Email:        plain,
		MenuActive:   plain,
		MenuInactive: plain,
		Title:        plain,
		Completed:    plain,
		DueDate:      plain,
		Star:         plain,
		TaskID:       plain,
		Empty:        plain,
	}
}
