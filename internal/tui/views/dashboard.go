package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// DashboardView shows the pending/completed/today counters and the full
// task list, pending first.
type DashboardView struct {
	*BaseView
}

// NewDashboardView creates a new DashboardView.
func NewDashboardView(s *state.State) *DashboardView {
	return &DashboardView{BaseView: NewBaseView(s)}
}

// Name returns the view identifier.
func (v *DashboardView) Name() string { return "dashboard" }

// OnEnter is called when switching to this view.
func (v *DashboardView) OnEnter() {
	v.State.TaskCursor = 0
}

func (v *DashboardView) list() []api.Task {
	return DashboardList(v.State.Tasks)
}

// ItemCount returns the number of selectable rows.
func (v *DashboardView) ItemCount() int {
	return len(v.list())
}

// SelectedTask returns the task under the cursor.
func (v *DashboardView) SelectedTask() *api.Task {
	return taskAt(v.list(), v.State.TaskCursor)
}

// Render returns the view's content.
func (v *DashboardView) Render(width, height int) string {
	stats := DashboardStats(v.State.Tasks, v.Today())

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Pending", stats.Pending),
		statCard("Completed", stats.Completed),
		statCard("Due Today", stats.DueToday),
	)

	summary := styles.Subtitle.Render("You have " + renderCount(stats.Pending) + " pending")

	var sb strings.Builder
	sb.WriteString(cards)
	sb.WriteString("\n")
	sb.WriteString(summary)
	sb.WriteString("\n\n")
	sb.WriteString(v.renderTaskList(v.list(), v.State.TaskCursor, width,
		"No tasks found. Create one to get started!"))
	return sb.String()
}

func statCard(label string, value int) string {
	inner := lipgloss.JoinVertical(lipgloss.Center,
		styles.StatValue.Render(strconv.Itoa(value)),
		styles.StatLabel.Render(label),
	)
	return styles.StatCard.Render(inner)
}
