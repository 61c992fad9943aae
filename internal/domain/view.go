package domain

import (
	"strings"
)

// View selects which subset of a user's tasks the dashboard shows.
type View string

const (
	ViewDashboard View = "dashboard" // all tasks, stored order
	ViewCalendar  View = "calendar"  // tasks with a due date, date order
	ViewImportant View = "important" // starred tasks, stored order
)

// Views lists the selectable views in menu order.
func Views() []View {
	return []View{ViewDashboard, ViewCalendar, ViewImportant}
}

// String returns the view name.
func (v View) String() string {
	return string(v)
}

// IsValid checks if the view is one of the known views.
func (v View) IsValid() bool {
	switch v {
	case ViewDashboard, ViewCalendar, ViewImportant:
		return true
	}
	return false
}

// ParseView resolves a menu label to a view. Matching is case-insensitive and
// by substring, so "My Dashboard" selects the dashboard view. Labels
// containing "settings" or "logout" never resolve to a view; those menu
// entries keep their own behavior.
func ParseView(label string) (View, bool) {
	lowered := strings.ToLower(label)
	if strings.Contains(lowered, "settings") || strings.Contains(lowered, "logout") {
		return "", false
	}
	for _, view := range Views() {
		if strings.Contains(lowered, string(view)) {
			return view, true
		}
	}
	return "", false
}
