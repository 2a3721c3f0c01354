package views

import (
	"github.com/daywise/daywise-tui/internal/tui/state"
)

// Registry holds all registered views keyed by tab.
type Registry struct {
	views map[string]ViewHandler
	tabs  []TabBinding
}

// TabBinding associates a tab with a view name.
type TabBinding struct {
	Tab      state.Tab
	ViewName string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[string]ViewHandler),
	}
}

// RegisterView adds a view to the registry.
func (r *Registry) RegisterView(view ViewHandler) {
	r.views[view.Name()] = view
}

// RegisterTab binds a tab to a view name.
func (r *Registry) RegisterTab(tab state.Tab, viewName string) {
	r.tabs = append(r.tabs, TabBinding{Tab: tab, ViewName: viewName})
}

// GetView returns a view by name.
func (r *Registry) GetView(name string) (ViewHandler, bool) {
	view, ok := r.views[name]
	return view, ok
}

// GetViewForTab returns the view bound to a tab.
func (r *Registry) GetViewForTab(tab state.Tab) (ViewHandler, bool) {
	for _, b := range r.tabs {
		if b.Tab == tab {
			return r.GetView(b.ViewName)
		}
	}
	return nil, false
}

// DefaultRegistry creates a registry with every tab bound. The tab enum
// is exhaustive here: there is no view identifier that can fail to map.
func DefaultRegistry(s *state.State) *Registry {
	r := NewRegistry()

	r.RegisterView(NewDashboardView(s))
	r.RegisterView(NewTodayView(s))
	r.RegisterView(NewUpcomingView(s))
	r.RegisterView(NewCalendarView(s))
	r.RegisterView(NewPriorityView(s))
	r.RegisterView(NewCompletedView(s))
	r.RegisterView(NewProjectsView(s))

	r.RegisterTab(state.TabDashboard, "dashboard")
	r.RegisterTab(state.TabToday, "today")
	r.RegisterTab(state.TabUpcoming, "upcoming")
	r.RegisterTab(state.TabCalendar, "calendar")
	r.RegisterTab(state.TabPriority, "priority")
	r.RegisterTab(state.TabCompleted, "completed")
	r.RegisterTab(state.TabProjects, "projects")

	return r
}
