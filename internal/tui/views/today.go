package views

import (
	"strings"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// TodayView shows tasks whose due date equals the current local date.
type TodayView struct {
	*BaseView
}

// NewTodayView creates a new TodayView.
func NewTodayView(s *state.State) *TodayView {
	return &TodayView{BaseView: NewBaseView(s)}
}

func (v *TodayView) Name() string { return "today" }

func (v *TodayView) OnEnter() {
	v.State.TaskCursor = 0
}

func (v *TodayView) list() []api.Task {
	return TodayTasks(v.State.Tasks, v.Today())
}

func (v *TodayView) ItemCount() int {
	return len(v.list())
}

func (v *TodayView) SelectedTask() *api.Task {
	return taskAt(v.list(), v.State.TaskCursor)
}

func (v *TodayView) Render(width, height int) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Today"))
	sb.WriteString("\n\n")
	sb.WriteString(v.renderTaskList(v.list(), v.State.TaskCursor, width,
		"Nothing due today."))
	return sb.String()
}
