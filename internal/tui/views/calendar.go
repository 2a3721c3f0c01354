package views

import (
	"strings"
	"time"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// CalendarView shows all tasks grouped by due date, earliest group first.
type CalendarView struct {
	*BaseView
}

// NewCalendarView creates a new CalendarView.
func NewCalendarView(s *state.State) *CalendarView {
	return &CalendarView{BaseView: NewBaseView(s)}
}

func (v *CalendarView) Name() string { return "calendar" }

func (v *CalendarView) OnEnter() {
	v.State.TaskCursor = 0
}

// flat returns the grouped tasks flattened in display order, so the
// cursor can run across group boundaries.
func (v *CalendarView) flat() []api.Task {
	var out []api.Task
	for _, g := range CalendarGroups(v.State.Tasks) {
		out = append(out, g.Tasks...)
	}
	return out
}

func (v *CalendarView) ItemCount() int {
	return len(v.flat())
}

func (v *CalendarView) SelectedTask() *api.Task {
	return taskAt(v.flat(), v.State.TaskCursor)
}

func (v *CalendarView) Render(width, height int) string {
	groups := CalendarGroups(v.State.Tasks)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Calendar"))
	sb.WriteString("\n\n")

	if len(groups) == 0 {
		sb.WriteString(styles.EmptyState.Render("Nothing on the calendar."))
		return sb.String()
	}

	row := 0
	for _, g := range groups {
		sb.WriteString(styles.Subtitle.Render(formatGroupDate(g.Date, v.Today())))
		sb.WriteString("\n")
		for _, t := range g.Tasks {
			sb.WriteString(v.renderTaskRow(t, row == v.State.TaskCursor, width))
			sb.WriteString("\n")
			row++
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatGroupDate renders a group heading like "Mon, Jan 2 (today)".
func formatGroupDate(date, today string) string {
	parsed, err := time.Parse(api.DateLayout, date)
	if err != nil {
		if date == "" {
			return "No due date"
		}
		return date
	}

	heading := parsed.Format("Mon, Jan 2 2006")
	if date == today {
		heading += " (today)"
	}
	return heading
}
