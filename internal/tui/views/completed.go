package views

import (
	"strings"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// CompletedView shows finished tasks, most recently due first.
type CompletedView struct {
	*BaseView
}

// NewCompletedView creates a new CompletedView.
func NewCompletedView(s *state.State) *CompletedView {
	return &CompletedView{BaseView: NewBaseView(s)}
}

func (v *CompletedView) Name() string { return "completed" }

func (v *CompletedView) OnEnter() {
	v.State.TaskCursor = 0
}

func (v *CompletedView) list() []api.Task {
	return CompletedTasks(v.State.Tasks)
}

func (v *CompletedView) ItemCount() int {
	return len(v.list())
}

func (v *CompletedView) SelectedTask() *api.Task {
	return taskAt(v.list(), v.State.TaskCursor)
}

func (v *CompletedView) Render(width, height int) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Completed"))
	sb.WriteString("\n\n")
	sb.WriteString(v.renderTaskList(v.list(), v.State.TaskCursor, width,
		"Nothing completed yet."))
	return sb.String()
}
