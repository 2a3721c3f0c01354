package views

import (
	"strings"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// PriorityView shows pending tasks bucketed high, medium, low. Buckets
// with no tasks are omitted rather than rendered empty.
type PriorityView struct {
	*BaseView
}

// NewPriorityView creates a new PriorityView.
func NewPriorityView(s *state.State) *PriorityView {
	return &PriorityView{BaseView: NewBaseView(s)}
}

func (v *PriorityView) Name() string { return "priority" }

func (v *PriorityView) OnEnter() {
	v.State.TaskCursor = 0
}

func (v *PriorityView) flat() []api.Task {
	var out []api.Task
	for _, g := range PriorityGroups(v.State.Tasks) {
		out = append(out, g.Tasks...)
	}
	return out
}

func (v *PriorityView) ItemCount() int {
	return len(v.flat())
}

func (v *PriorityView) SelectedTask() *api.Task {
	return taskAt(v.flat(), v.State.TaskCursor)
}

func (v *PriorityView) Render(width, height int) string {
	groups := PriorityGroups(v.State.Tasks)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Priority"))
	sb.WriteString("\n\n")

	if len(groups) == 0 {
		sb.WriteString(styles.EmptyState.Render("No pending tasks."))
		return sb.String()
	}

	row := 0
	for _, g := range groups {
		heading := styles.GetPriorityStyle(g.Priority).Render(strings.ToUpper(g.Priority))
		sb.WriteString(heading + " " + styles.StatusBar.Render(renderCount(len(g.Tasks))))
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
