package dashboard

import (
	"fmt"
	"io"
	"strings"

	"task-desk/internal/domain"
)

// Glyphs for task controls. The star is filled when the task is important,
// outline otherwise.
const (
	checkboxChecked   = "[x]"
	checkboxUnchecked = "[ ]"
	starFilled        = "★"
	starOutline       = "☆"
)

// Renderer writes the dashboard to an io.Writer. The whole list region is
// rebuilt from scratch on every call; there is no partial update.
type Renderer struct {
	w     io.Writer
	theme Theme
}

// NewRenderer creates a renderer writing to w with the given theme.
func NewRenderer(w io.Writer, theme Theme) *Renderer {
	return &Renderer{w: w, theme: theme}
}

// Render writes the header, the view menu and the task list (or the view's
// empty-state message) for the given user and active view.
func (r *Renderer) Render(user *domain.User, activeView domain.View, rows []Row) {
	r.renderHeader(user)
	r.renderMenu(activeView)

	if len(rows) == 0 {
		fmt.Fprintln(r.w, r.theme.Empty.Render(EmptyMessage(activeView)))
		return
	}

	for _, row := range rows {
		fmt.Fprintln(r.w, r.renderRow(row))
	}
}

// renderHeader shows the logged-in user's username and email.
func (r *Renderer) renderHeader(user *domain.User) {
	if user == nil {
		return
	}
	line := r.theme.Header.Render(user.Username)
	if user.Email != "" {
		line += " " + r.theme.Email.Render("<"+user.Email+">")
	}
	fmt.Fprintln(r.w, line)
}

// renderMenu shows the selectable views with the active one highlighted
// exclusively.
func (r *Renderer) renderMenu(activeView domain.View) {
	labels := make([]string, 0, len(domain.Views()))
	for _, view := range domain.Views() {
		if view == activeView {
			labels = append(labels, r.theme.MenuActive.Render(view.String()))
		} else {
			labels = append(labels, r.theme.MenuInactive.Render(view.String()))
		}
	}
	fmt.Fprintln(r.w, strings.Join(labels, " | "))
	fmt.Fprintln(r.w)
}

// renderRow formats one task line: checkbox, title, optional due-date badge,
// star glyph and the task id.
func (r *Renderer) renderRow(row Row) string {
	checkbox := checkboxUnchecked
	titleStyle := r.theme.Title
	if row.Completed {
		checkbox = checkboxChecked
		titleStyle = r.theme.Completed
	}

	star := starOutline
	if row.Important {
		star = r.theme.Star.Render(starFilled)
	}

	line := fmt.Sprintf("%s %s", checkbox, titleStyle.Render(row.Title))
	if row.DueDate != "" {
		line += " " + r.theme.DueDate.Render("("+row.DueDate+")")
	}
	line += " " + star
	line += " " + r.theme.TaskID.Render(fmt.Sprintf("#%d", row.ID))
	return line
}
