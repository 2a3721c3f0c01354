package views

import (
	"strings"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// UpcomingView shows tasks due strictly after today, soonest first.
type UpcomingView struct {
	*BaseView
}

// NewUpcomingView creates a new UpcomingView.
func NewUpcomingView(s *state.State) *UpcomingView {
	return &UpcomingView{BaseView: NewBaseView(s)}
}

func (v *UpcomingView) Name() string { return "upcoming" }

func (v *UpcomingView) OnEnter() {
	v.State.TaskCursor = 0
}

func (v *UpcomingView) list() []api.Task {
	return UpcomingTasks(v.State.Tasks, v.Today())
}

func (v *UpcomingView) ItemCount() int {
	return len(v.list())
}

func (v *UpcomingView) SelectedTask() *api.Task {
	return taskAt(v.list(), v.State.TaskCursor)
}

func (v *UpcomingView) Render(width, height int) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Upcoming"))
	sb.WriteString("\n\n")
	sb.WriteString(v.renderTaskList(v.list(), v.State.TaskCursor, width,
		"Nothing scheduled ahead."))
	return sb.String()
}
