package views

import (
	"time"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
)

// BaseView provides common functionality for all views.
// Views embed this struct to get shared helpers.
type BaseView struct {
	State *state.State
}

// NewBaseView creates a new BaseView with the given state.
func NewBaseView(s *state.State) *BaseView {
	return &BaseView{State: s}
}

// Today returns the current local calendar date as an ISO date string.
func (b *BaseView) Today() string {
	return time.Now().Format(api.DateLayout)
}

// taskAt bounds-checks a projected list against the cursor.
func taskAt(tasks []api.Task, cursor int) *api.Task {
	if cursor < 0 || cursor >= len(tasks) {
		return nil
	}
	t := tasks[cursor]
	return &t
}
