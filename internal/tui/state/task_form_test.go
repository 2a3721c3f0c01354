package state

import (
	"testing"

	"github.com/daywise/daywise-tui/internal/api"
)

func TestCreateFormDraft(t *testing.T) {
	projects := []api.Project{{ID: 4, Name: "Home"}}

	f := NewCreateForm(projects)
	f.Title.SetValue("Water plants")
	f.Description.SetValue("the big ones")
	f.DueDate.SetValue("2024-06-01")
	f.ProjectIdx = 1

	draft := f.Draft()

	if draft.Title != "Water plants" {
		t.Errorf("title: %q", draft.Title)
	}
	if draft.Status != api.StatusPending {
		t.Errorf("create drafts must be pending, got %q", draft.Status)
	}
	if draft.Priority != api.PriorityMedium {
		t.Errorf("default priority: %q", draft.Priority)
	}
	if draft.ProjectID == nil || *draft.ProjectID != 4 {
		t.Errorf("project: %v", draft.ProjectID)
	}
	if draft.RecurrenceRule != "" {
		t.Errorf("recurrence rule set without recurrence: %q", draft.RecurrenceRule)
	}
}

func TestEditFormDraftCarriesUneditedFields(t *testing.T) {
	parentID := 9
	original := &api.Task{
		ID:       7,
		Title:    "old title",
		Status:   api.StatusCompleted,
		Priority: api.PriorityHigh,
		UserID:   3,
		ParentID: &parentID,
	}

	f := NewEditForm(original, nil)
	f.Title.SetValue("new title")

	draft := f.Draft()

	if draft.ID != 7 {
		t.Errorf("id: %d", draft.ID)
	}
	if draft.Title != "new title" {
		t.Errorf("title: %q", draft.Title)
	}
	// The form does not edit these; the full-replace update must still
	// carry them unchanged.
	if draft.Status != api.StatusCompleted {
		t.Errorf("status dropped: %q", draft.Status)
	}
	if draft.UserID != 3 {
		t.Errorf("user dropped: %d", draft.UserID)
	}
	if draft.ParentID == nil || *draft.ParentID != 9 {
		t.Errorf("parent dropped: %v", draft.ParentID)
	}
}

func TestPendingSubtaskBuffer(t *testing.T) {
	f := NewCreateForm(nil)

	f.SubtaskInput.SetValue("one")
	f.AddPendingSubtask()
	f.SubtaskInput.SetValue("two")
	f.AddPendingSubtask()
	f.SubtaskInput.SetValue("three")
	f.AddPendingSubtask()

	// Empty input is ignored.
	f.AddPendingSubtask()

	if len(f.PendingSubtasks) != 3 {
		t.Fatalf("expected 3 buffered subtasks, got %d", len(f.PendingSubtasks))
	}
	if f.SubtaskInput.Value() != "" {
		t.Error("input not cleared after buffering")
	}

	f.SubtaskCursor = 2
	f.RemovePendingSubtask(1)

	if len(f.PendingSubtasks) != 2 {
		t.Fatalf("expected 2 after removal, got %d", len(f.PendingSubtasks))
	}
	if f.PendingSubtasks[0].Title != "one" || f.PendingSubtasks[1].Title != "three" {
		t.Errorf("wrong element spliced: %+v", f.PendingSubtasks)
	}
	if f.SubtaskCursor != 1 {
		t.Errorf("cursor not clamped: %d", f.SubtaskCursor)
	}

	// Out-of-range indices are ignored.
	f.RemovePendingSubtask(5)
	if len(f.PendingSubtasks) != 2 {
		t.Error("out-of-range removal changed the buffer")
	}
}

func TestCyclePriority(t *testing.T) {
	f := NewCreateForm(nil)

	f.CyclePriority(1)
	if f.Priority != api.PriorityHigh {
		t.Errorf("expected high, got %q", f.Priority)
	}
	f.CyclePriority(1)
	if f.Priority != api.PriorityLow {
		t.Errorf("expected wrap to low, got %q", f.Priority)
	}
	f.CyclePriority(-1)
	if f.Priority != api.PriorityHigh {
		t.Errorf("expected high, got %q", f.Priority)
	}
}

func TestClearCacheBumpsGeneration(t *testing.T) {
	s := &State{
		Tasks:    []api.Task{{ID: 1}},
		Projects: []api.Project{{ID: 1}},
	}
	gen := s.FetchGen

	s.ClearCache()

	if s.Tasks != nil || s.Projects != nil {
		t.Error("cache not emptied")
	}
	if s.FetchGen != gen+1 {
		t.Errorf("generation not bumped: %d", s.FetchGen)
	}
}
