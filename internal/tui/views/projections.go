// Package views implements the view router and the renderers deriving
// each tab from the shared task/project cache.
package views

import (
	"sort"

	"github.com/daywise/daywise-tui/internal/api"
)

// Every projection in this file is a pure function of (tasks, projects,
// today's date). Renderers call them against the current cache; tests
// call them directly.

// TopLevel filters subtasks out of a task list. Subtasks surface under
// their parent in the edit form, not as standalone entries in the
// top-level views.
func TopLevel(tasks []api.Task) []api.Task {
	out := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsSubtask() {
			out = append(out, t)
		}
	}
	return out
}

// Stats holds the dashboard counters.
type Stats struct {
	Pending   int
	Completed int
	DueToday  int
}

// DashboardStats counts pending, completed and due-today tasks. The
// counts and the dashboard list are computed over the same parentless
// set, so pending+completed always equals the list length.
func DashboardStats(tasks []api.Task, today string) Stats {
	var s Stats
	for _, t := range TopLevel(tasks) {
		if t.IsCompleted() {
			s.Completed++
		} else {
			s.Pending++
		}
		if t.IsDueOn(today) {
			s.DueToday++
		}
	}
	return s
}

// DashboardList returns all top-level tasks, pending before completed,
// secondarily ascending by due date.
func DashboardList(tasks []api.Task) []api.Task {
	list := TopLevel(tasks)
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].IsCompleted() != list[j].IsCompleted() {
			return !list[i].IsCompleted()
		}
		return list[i].DueDate < list[j].DueDate
	})
	return list
}

// TodayTasks returns top-level tasks due exactly today. Plain string
// equality on the stored ISO date, mirroring how the server stores it.
func TodayTasks(tasks []api.Task, today string) []api.Task {
	out := make([]api.Task, 0)
	for _, t := range TopLevel(tasks) {
		if t.IsDueOn(today) {
			out = append(out, t)
		}
	}
	return out
}

// UpcomingTasks returns top-level tasks due strictly after today,
// ascending by due date.
func UpcomingTasks(tasks []api.Task, today string) []api.Task {
	out := make([]api.Task, 0)
	for _, t := range TopLevel(tasks) {
		if t.IsDueAfter(today) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

// DateGroup is one calendar bucket.
type DateGroup struct {
	Date  string
	Tasks []api.Task
}

// CalendarGroups buckets top-level tasks by due date, groups ascending
// by date string.
func CalendarGroups(tasks []api.Task) []DateGroup {
	byDate := make(map[string][]api.Task)
	for _, t := range TopLevel(tasks) {
		byDate[t.DueDate] = append(byDate[t.DueDate], t)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	groups := make([]DateGroup, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, DateGroup{Date: d, Tasks: byDate[d]})
	}
	return groups
}

// PriorityGroup is one priority bucket.
type PriorityGroup struct {
	Priority string
	Tasks    []api.Task
}

// PriorityGroups buckets non-completed top-level tasks by priority in
// fixed high, medium, low order. Empty groups are omitted entirely.
func PriorityGroups(tasks []api.Task) []PriorityGroup {
	order := []string{api.PriorityHigh, api.PriorityMedium, api.PriorityLow}

	byPriority := make(map[string][]api.Task)
	for _, t := range TopLevel(tasks) {
		if t.IsCompleted() {
			continue
		}
		byPriority[t.Priority] = append(byPriority[t.Priority], t)
	}

	groups := make([]PriorityGroup, 0, len(order))
	for _, p := range order {
		if len(byPriority[p]) == 0 {
			continue
		}
		groups = append(groups, PriorityGroup{Priority: p, Tasks: byPriority[p]})
	}
	return groups
}

// CompletedTasks returns completed top-level tasks, descending by due
// date, ties broken by id for render stability.
func CompletedTasks(tasks []api.Task) []api.Task {
	out := make([]api.Task, 0)
	for _, t := range TopLevel(tasks) {
		if t.IsCompleted() {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DueDate != out[j].DueDate {
			return out[i].DueDate > out[j].DueDate
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// ProjectSummary is one card in the projects view.
type ProjectSummary struct {
	Project   api.Project
	Pending   int
	Completed int
}

// ProjectSummaries builds one summary per project in cache order.
func ProjectSummaries(projects []api.Project, tasks []api.Task) []ProjectSummary {
	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		s := ProjectSummary{Project: p}
		for _, t := range tasks {
			if t.ProjectID == nil || *t.ProjectID != p.ID {
				continue
			}
			if t.IsCompleted() {
				s.Completed++
			} else {
				s.Pending++
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// ProjectTasks returns the tasks assigned to a project by exact id match.
func ProjectTasks(tasks []api.Task, projectID int) []api.Task {
	out := make([]api.Task, 0)
	for _, t := range tasks {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// Subtasks returns the persisted subtasks of a parent task.
func Subtasks(tasks []api.Task, parentID int) []api.Task {
	out := make([]api.Task, 0)
	for _, t := range tasks {
		if t.ParentID != nil && *t.ParentID == parentID {
			out = append(out, t)
		}
	}
	return out
}
