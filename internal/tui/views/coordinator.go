package views

import (
	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
)

// Coordinator tracks the active view and delegates to it. Callers that
// mutate the cache never need to know which view is on screen: the next
// render pass re-runs the active projection against the current cache.
type Coordinator struct {
	registry    *Registry
	state       *state.State
	currentView ViewHandler
}

// NewCoordinator creates a new view coordinator.
func NewCoordinator(s *state.State) *Coordinator {
	reg := DefaultRegistry(s)
	c := &Coordinator{
		registry: reg,
		state:    s,
	}

	if view, ok := reg.GetViewForTab(s.CurrentTab); ok {
		c.currentView = view
	}

	return c
}

// CurrentView returns the active view.
func (c *Coordinator) CurrentView() ViewHandler {
	return c.currentView
}

// SwitchToTab switches to the view for the given tab.
func (c *Coordinator) SwitchToTab(tab state.Tab) {
	view, ok := c.registry.GetViewForTab(tab)
	if !ok {
		return
	}

	c.currentView = view
	c.state.CurrentTab = tab
	view.OnEnter()
}

// SelectedTask returns the task under the cursor in the active view.
func (c *Coordinator) SelectedTask() *api.Task {
	if c.currentView == nil {
		return nil
	}
	return c.currentView.SelectedTask()
}

// MoveCursor moves the task cursor by delta, clamped to the active
// view's row count.
func (c *Coordinator) MoveCursor(delta int) {
	if c.currentView == nil {
		return
	}

	maxItems := c.currentView.ItemCount()
	c.state.TaskCursor += delta
	if c.state.TaskCursor < 0 {
		c.state.TaskCursor = 0
	}
	if maxItems > 0 && c.state.TaskCursor >= maxItems {
		c.state.TaskCursor = maxItems - 1
	}
	if maxItems == 0 {
		c.state.TaskCursor = 0
	}
}

// Render renders the active view against the current cache.
func (c *Coordinator) Render(width, height int) string {
	if c.currentView == nil {
		return ""
	}
	return c.currentView.Render(width, height)
}
