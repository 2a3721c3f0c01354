package state

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/api"
)

// FormField constants for focus management
const (
	FormFieldTitle = iota
	FormFieldDescription
	FormFieldDue
	FormFieldPriority
	FormFieldProject
	FormFieldRecurrence
	FormFieldSubtasks
	FormFieldSubmit
)

const formFieldCount = 8

// Form modes.
const (
	FormModeCreate = "create"
	FormModeEdit   = "edit"
)

// PendingSubtask is an uncommitted subtask staged while creating a new
// task. It becomes a real create call once the parent task is persisted
// and a server identifier exists to parent it to.
type PendingSubtask struct {
	Title  string
	Status string
}

// TaskForm represents the state of the task creation/editing form.
type TaskForm struct {
	Title       textinput.Model
	Description textinput.Model
	DueDate     textinput.Model
	Priority    string
	ProjectIdx  int // index into AvailableProjects, 0 = no project
	IsRecurring bool
	Recurrence  textinput.Model

	// Mode tracking
	Mode   string
	TaskID int
	// Original is the task being edited; nil in create mode.
	Original *api.Task

	FocusIndex int

	// Draft buffer: only used in create mode. Edit mode creates
	// subtasks immediately against the persisted parent instead.
	PendingSubtasks []PendingSubtask
	SubtaskInput    textinput.Model
	AddingSubtask   bool
	SubtaskCursor   int

	// Selection data
	AvailableProjects []api.Project
}

// NewCreateForm opens the form for a new, unsaved task. The due date
// defaults to today and the draft buffer starts empty.
func NewCreateForm(projects []api.Project) *TaskForm {
	f := newForm(projects)
	f.Mode = FormModeCreate
	f.DueDate.SetValue(time.Now().Format(api.DateLayout))
	f.Priority = api.PriorityMedium
	f.Title.Focus()
	return f
}

// NewEditForm opens the form populated from an existing task.
func NewEditForm(task *api.Task, projects []api.Project) *TaskForm {
	f := newForm(projects)
	f.Mode = FormModeEdit
	f.TaskID = task.ID
	f.Original = task

	f.Title.SetValue(task.Title)
	f.Description.SetValue(task.Description)
	f.DueDate.SetValue(task.DueDate)
	f.Priority = task.Priority
	f.IsRecurring = task.IsRecurring
	f.Recurrence.SetValue(task.RecurrenceRule)
	if task.ProjectID != nil {
		for i, p := range projects {
			if p.ID == *task.ProjectID {
				f.ProjectIdx = i + 1
				break
			}
		}
	}
	f.Title.Focus()
	return f
}

func newForm(projects []api.Project) *TaskForm {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 200

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"

	due := textinput.New()
	due.Placeholder = api.DateLayout
	due.CharLimit = 10

	rec := textinput.New()
	rec.Placeholder = "e.g. weekly"
	rec.CharLimit = 50

	sub := textinput.New()
	sub.Placeholder = "Subtask title"
	sub.CharLimit = 200

	return &TaskForm{
		Description:       desc,
		Title:             title,
		DueDate:           due,
		Recurrence:        rec,
		SubtaskInput:      sub,
		AvailableProjects: projects,
	}
}

// SelectedProjectID returns the chosen project id, nil for "no project".
func (f *TaskForm) SelectedProjectID() *int {
	if f.ProjectIdx <= 0 || f.ProjectIdx > len(f.AvailableProjects) {
		return nil
	}
	id := f.AvailableProjects[f.ProjectIdx-1].ID
	return &id
}

// Draft assembles the full task record the form currently describes.
// The caller stamps ownership from the session.
func (f *TaskForm) Draft() api.Task {
	task := api.Task{
		ID:          f.TaskID,
		Title:       f.Title.Value(),
		Description: f.Description.Value(),
		DueDate:     f.DueDate.Value(),
		Priority:    f.Priority,
		ProjectID:   f.SelectedProjectID(),
		IsRecurring: f.IsRecurring,
	}
	if f.IsRecurring {
		task.RecurrenceRule = f.Recurrence.Value()
	}
	if f.Original != nil {
		// Full-replace update: carry fields the form does not edit.
		task.Status = f.Original.Status
		task.UserID = f.Original.UserID
		task.ParentID = f.Original.ParentID
	} else {
		task.Status = api.StatusPending
	}
	return task
}

// AddPendingSubtask appends the subtask input's value to the draft buffer.
func (f *TaskForm) AddPendingSubtask() {
	title := f.SubtaskInput.Value()
	if title == "" {
		return
	}
	f.PendingSubtasks = append(f.PendingSubtasks, PendingSubtask{
		Title:  title,
		Status: api.StatusPending,
	})
	f.SubtaskInput.Reset()
}

// RemovePendingSubtask splices a buffered subtask out by index.
func (f *TaskForm) RemovePendingSubtask(idx int) {
	if idx < 0 || idx >= len(f.PendingSubtasks) {
		return
	}
	f.PendingSubtasks = append(f.PendingSubtasks[:idx], f.PendingSubtasks[idx+1:]...)
	if f.SubtaskCursor >= len(f.PendingSubtasks) && f.SubtaskCursor > 0 {
		f.SubtaskCursor--
	}
}

// NextField moves focus to the next form field.
func (f *TaskForm) NextField() {
	f.setFocus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous form field.
func (f *TaskForm) PrevField() {
	f.setFocus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

func (f *TaskForm) setFocus(idx int) {
	f.FocusIndex = idx
	f.Title.Blur()
	f.Description.Blur()
	f.DueDate.Blur()
	f.Recurrence.Blur()
	f.SubtaskInput.Blur()

	switch idx {
	case FormFieldTitle:
		f.Title.Focus()
	case FormFieldDescription:
		f.Description.Focus()
	case FormFieldDue:
		f.DueDate.Focus()
	case FormFieldRecurrence:
		f.Recurrence.Focus()
	case FormFieldSubtasks:
		if f.AddingSubtask {
			f.SubtaskInput.Focus()
		}
	}
}

// CyclePriority advances the priority selection.
func (f *TaskForm) CyclePriority(delta int) {
	order := []string{api.PriorityLow, api.PriorityMedium, api.PriorityHigh}
	idx := 1
	for i, p := range order {
		if p == f.Priority {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	f.Priority = order[idx]
}

// CycleProject advances the project selection, including "no project".
func (f *TaskForm) CycleProject(delta int) {
	count := len(f.AvailableProjects) + 1
	f.ProjectIdx = (f.ProjectIdx + delta + count) % count
}

// Update forwards non-key messages (like cursor blink) to the focused input.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.FocusIndex {
	case FormFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
	case FormFieldDescription:
		f.Description, cmd = f.Description.Update(msg)
	case FormFieldDue:
		f.DueDate, cmd = f.DueDate.Update(msg)
	case FormFieldRecurrence:
		f.Recurrence, cmd = f.Recurrence.Update(msg)
	case FormFieldSubtasks:
		if f.AddingSubtask {
			f.SubtaskInput, cmd = f.SubtaskInput.Update(msg)
		}
	}
	return cmd
}
