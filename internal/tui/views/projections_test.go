package views

import (
	"testing"

	"github.com/daywise/daywise-tui/internal/api"
)

func intPtr(i int) *int { return &i }

func sampleTasks() []api.Task {
	return []api.Task{
		{ID: 1, Title: "Pay rent", DueDate: "2024-01-01", Priority: api.PriorityHigh, Status: api.StatusPending},
		{ID: 2, Title: "Buy milk", DueDate: "2024-01-02", Priority: api.PriorityLow, Status: api.StatusPending},
		{ID: 3, Title: "Old report", DueDate: "2023-12-20", Priority: api.PriorityMedium, Status: api.StatusCompleted},
		{ID: 4, Title: "Plan trip", DueDate: "2024-01-05", Priority: api.PriorityMedium, Status: api.StatusPending},
		{ID: 5, Title: "Sub item", DueDate: "2024-01-01", Priority: api.PriorityLow, Status: api.StatusPending, ParentID: intPtr(1)},
		{ID: 6, Title: "Archive", DueDate: "2024-01-03", Priority: api.PriorityLow, Status: api.StatusCompleted},
	}
}

func TestDashboardStatsConsistency(t *testing.T) {
	tasks := sampleTasks()
	today := "2024-01-01"

	stats := DashboardStats(tasks, today)
	list := DashboardList(tasks)

	// pending+completed must account for every listed task: status is
	// mutually exclusive by construction.
	if stats.Pending+stats.Completed != len(list) {
		t.Errorf("pending(%d)+completed(%d) != list length %d",
			stats.Pending, stats.Completed, len(list))
	}
	if stats.Pending != 3 {
		t.Errorf("expected 3 pending, got %d", stats.Pending)
	}
	if stats.Completed != 2 {
		t.Errorf("expected 2 completed, got %d", stats.Completed)
	}
	if stats.DueToday != 1 {
		t.Errorf("expected 1 due today, got %d", stats.DueToday)
	}
}

func TestDashboardListOrdering(t *testing.T) {
	list := DashboardList(sampleTasks())

	seenCompleted := false
	var lastDue string
	for _, task := range list {
		if task.IsCompleted() {
			seenCompleted = true
			lastDue = ""
			continue
		}
		if seenCompleted {
			t.Fatalf("pending task %q after a completed one", task.Title)
		}
		if lastDue != "" && task.DueDate < lastDue {
			t.Errorf("pending tasks not ascending by due date: %q before %q", lastDue, task.DueDate)
		}
		lastDue = task.DueDate
	}
}

func TestTodayTasksExactMatch(t *testing.T) {
	tasks := TodayTasks(sampleTasks(), "2024-01-01")

	if len(tasks) != 1 {
		t.Fatalf("expected 1 task due today, got %d", len(tasks))
	}
	if tasks[0].Title != "Pay rent" {
		t.Errorf("unexpected task: %s", tasks[0].Title)
	}
}

func TestUpcomingStrictlyAfterToday(t *testing.T) {
	today := "2024-01-02"
	tasks := UpcomingTasks(sampleTasks(), today)

	for _, task := range tasks {
		if task.DueDate <= today {
			t.Errorf("upcoming includes %q due %s (today %s)", task.Title, task.DueDate, today)
		}
	}

	var lastDue string
	for _, task := range tasks {
		if lastDue != "" && task.DueDate < lastDue {
			t.Error("upcoming tasks not ascending by due date")
		}
		lastDue = task.DueDate
	}
}

func TestCalendarGroupsSorted(t *testing.T) {
	groups := CalendarGroups(sampleTasks())

	if len(groups) == 0 {
		t.Fatal("expected calendar groups")
	}

	var lastDate string
	total := 0
	for i, g := range groups {
		if i > 0 && g.Date < lastDate {
			t.Errorf("groups out of order: %q after %q", g.Date, lastDate)
		}
		if len(g.Tasks) == 0 {
			t.Errorf("empty group for %q", g.Date)
		}
		lastDate = g.Date
		total += len(g.Tasks)
	}

	// All top-level tasks are represented exactly once.
	if total != len(TopLevel(sampleTasks())) {
		t.Errorf("expected %d grouped tasks, got %d", len(TopLevel(sampleTasks())), total)
	}
}

func TestPriorityGroups(t *testing.T) {
	tests := []struct {
		name      string
		tasks     []api.Task
		wantOrder []string
	}{
		{
			name:      "all priorities present",
			tasks:     sampleTasks(),
			wantOrder: []string{api.PriorityHigh, api.PriorityMedium, api.PriorityLow},
		},
		{
			name: "empty groups omitted",
			tasks: []api.Task{
				{ID: 1, Priority: api.PriorityLow, Status: api.StatusPending},
			},
			wantOrder: []string{api.PriorityLow},
		},
		{
			name: "completed tasks never render",
			tasks: []api.Task{
				{ID: 1, Priority: api.PriorityHigh, Status: api.StatusCompleted},
			},
			wantOrder: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := PriorityGroups(tt.tasks)

			if len(groups) != len(tt.wantOrder) {
				t.Fatalf("expected %d groups, got %d", len(tt.wantOrder), len(groups))
			}
			for i, g := range groups {
				if g.Priority != tt.wantOrder[i] {
					t.Errorf("group %d: expected %q, got %q", i, tt.wantOrder[i], g.Priority)
				}
				for _, task := range g.Tasks {
					if task.IsCompleted() {
						t.Errorf("completed task %d in priority view", task.ID)
					}
				}
			}
		})
	}
}

func TestCompletedDescending(t *testing.T) {
	tasks := CompletedTasks(sampleTasks())

	if len(tasks) != 2 {
		t.Fatalf("expected 2 completed tasks, got %d", len(tasks))
	}
	if tasks[0].DueDate < tasks[1].DueDate {
		t.Error("completed tasks not descending by due date")
	}
	for _, task := range tasks {
		if !task.IsCompleted() {
			t.Errorf("pending task %d in completed view", task.ID)
		}
	}
}

func TestSubtasksExcludedFromTopLevelViews(t *testing.T) {
	tasks := sampleTasks()
	today := "2024-01-01"

	contains := func(list []api.Task, id int) bool {
		for _, t := range list {
			if t.ID == id {
				return true
			}
		}
		return false
	}

	if contains(DashboardList(tasks), 5) {
		t.Error("dashboard lists a subtask")
	}
	if contains(TodayTasks(tasks, today), 5) {
		t.Error("today view lists a subtask")
	}
	if contains(UpcomingTasks(tasks, "2023-12-31"), 5) {
		t.Error("upcoming view lists a subtask")
	}
	for _, g := range PriorityGroups(tasks) {
		if contains(g.Tasks, 5) {
			t.Error("priority view lists a subtask")
		}
	}
	for _, g := range CalendarGroups(tasks) {
		if contains(g.Tasks, 5) {
			t.Error("calendar view lists a subtask")
		}
	}
}

func TestProjectSummariesAndTasks(t *testing.T) {
	projects := []api.Project{
		{ID: 1, Name: "Home", Color: "#6366f1"},
		{ID: 2, Name: "Work", Color: "#ef4444"},
	}
	tasks := []api.Task{
		{ID: 1, Title: "a", Status: api.StatusPending, ProjectID: intPtr(1)},
		{ID: 2, Title: "b", Status: api.StatusCompleted, ProjectID: intPtr(1)},
		{ID: 3, Title: "c", Status: api.StatusPending, ProjectID: intPtr(99)}, // dangling reference
		{ID: 4, Title: "d", Status: api.StatusPending},
	}

	summaries := ProjectSummaries(projects, tasks)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Pending != 1 || summaries[0].Completed != 1 {
		t.Errorf("unexpected Home counts: %+v", summaries[0])
	}
	if summaries[1].Pending != 0 || summaries[1].Completed != 0 {
		t.Errorf("unexpected Work counts: %+v", summaries[1])
	}

	home := ProjectTasks(tasks, 1)
	if len(home) != 2 {
		t.Errorf("expected 2 tasks in Home, got %d", len(home))
	}
	if got := ProjectTasks(tasks, 2); len(got) != 0 {
		t.Errorf("expected no tasks in Work, got %d", len(got))
	}
}

func TestSubtasksByParent(t *testing.T) {
	tasks := sampleTasks()

	subs := Subtasks(tasks, 1)
	if len(subs) != 1 || subs[0].ID != 5 {
		t.Fatalf("expected subtask 5 under parent 1, got %+v", subs)
	}

	if got := Subtasks(tasks, 2); len(got) != 0 {
		t.Errorf("expected no subtasks for task 2, got %d", len(got))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"fits", "hello", 10, "hello"},
		{"truncated", "hello world", 6, "hello…"},
		{"zero width", "hello", 0, ""},
		{"wide runes", "日本語テスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
