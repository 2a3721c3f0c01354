package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// Truncate truncates a string to the given cell width, appending "…" if
// truncated. Handles wide characters correctly using runewidth.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// renderTaskRow renders one task line: checkbox, title, priority badge,
// project tag, due display and recurrence badge.
func (b *BaseView) renderTaskRow(t api.Task, selected bool, width int) string {
	checkbox := "[ ]"
	if t.IsCompleted() {
		checkbox = "[x]"
	}

	title := Truncate(t.Title, width/2)

	var parts []string
	parts = append(parts, checkbox, title)
	parts = append(parts, styles.GetPriorityStyle(t.Priority).Render("("+t.Priority+")"))

	if t.ProjectID != nil {
		// A projectId with no matching project still renders, just
		// without a tag.
		if p := b.State.ProjectByID(*t.ProjectID); p != nil {
			tag := styles.TaskProjectTag
			if p.Color != "" {
				tag = tag.Foreground(lipgloss.Color(p.Color))
			}
			parts = append(parts, tag.Render("#"+p.Name))
		}
	}

	if t.DueDate != "" {
		due := t.DueDisplay()
		if t.IsDueOn(b.Today()) {
			parts = append(parts, styles.TaskDueToday.Render(due))
		} else {
			parts = append(parts, styles.TaskDue.Render(due))
		}
	}

	if t.IsRecurring {
		badge := "↻"
		if t.RecurrenceRule != "" {
			badge = "↻ " + t.RecurrenceRule
		}
		parts = append(parts, styles.TaskRecurring.Render(badge))
	}

	line := strings.Join(parts, " ")

	var row string
	switch {
	case selected:
		row = styles.TaskSelected.Render(line)
	case t.IsCompleted():
		row = styles.TaskCompleted.Render(line)
	default:
		row = styles.TaskItem.Render(line)
	}

	// The description shows only under the cursor to keep rows compact.
	if selected && t.Description != "" {
		row += "\n" + styles.TaskDescription.Render(Truncate(t.Description, width-8))
	}

	return row
}

// renderTaskList renders a flat task list with cursor highlighting and
// an explicit message when the list is empty.
func (b *BaseView) renderTaskList(tasks []api.Task, cursor int, width int, emptyMsg string) string {
	if len(tasks) == 0 {
		return styles.EmptyState.Render(emptyMsg)
	}

	var sb strings.Builder
	for i, t := range tasks {
		sb.WriteString(b.renderTaskRow(t, i == cursor, width))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderCount formats an "N task(s)" fragment.
func renderCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
