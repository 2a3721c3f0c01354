package views

import "github.com/daywise/daywise-tui/internal/api"

// ViewHandler defines the contract for a tab view. Each view is a
// projection of the shared cache; switching tabs never refetches, and
// re-rendering the active view is how every mutation becomes visible.
type ViewHandler interface {
	// Name returns the view identifier.
	Name() string

	// OnEnter is called when switching to this view.
	OnEnter()

	// ItemCount returns the number of selectable rows currently shown,
	// used for cursor bounds.
	ItemCount() int

	// SelectedTask returns the task under the cursor, or nil when the
	// cursor is not on a task.
	SelectedTask() *api.Task

	// Render returns the view's content for the current cache state.
	Render(width, height int) string
}
