package logic

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// maxConcurrentCreates bounds parallel requests when flushing the
// buffered subtasks of a newly created task.
const maxConcurrentCreates = 5

// toggleTask flips a task's completion state. The cache is updated
// before the request is issued so the flip is visible on the next
// frame; a failed request triggers a refresh back to server truth.
func (h *Handler) toggleTask(id int) tea.Cmd {
	cached := h.TaskByID(id)
	if cached == nil {
		return nil
	}

	if cached.IsCompleted() {
		cached.Status = api.StatusPending
	} else {
		cached.Status = api.StatusCompleted
	}

	updated := *cached
	client := h.Client

	return func() tea.Msg {
		if _, err := client.UpdateTask(updated.ID, updated); err != nil {
			return toggleFailedMsg{err}
		}
		return nil
	}
}

// saveTask submits the open form. Create mode flushes the buffered
// subtasks once the parent exists; edit mode sends a full-replace
// update. The form stays open until a taskSavedMsg closes it, so a
// failed save keeps the user's input.
func (h *Handler) saveTask() tea.Cmd {
	form := h.Form
	if form == nil || h.Session == nil {
		return nil
	}

	draft := form.Draft()
	if strings.TrimSpace(draft.Title) == "" {
		h.StatusMsg = "Title is required"
		return nil
	}
	if draft.UserID == 0 {
		draft.UserID = h.Session.ID
	}

	h.Loading = true
	client := h.Client

	if form.Mode == state.FormModeEdit {
		id := form.TaskID
		return func() tea.Msg {
			if _, err := client.UpdateTask(id, draft); err != nil {
				return errMsg{err}
			}
			return taskSavedMsg{}
		}
	}

	pending := make([]state.PendingSubtask, len(form.PendingSubtasks))
	copy(pending, form.PendingSubtasks)
	userID := h.Session.ID

	return func() tea.Msg {
		created, err := client.CreateTask(draft)
		if err != nil {
			return errMsg{err}
		}
		if err := flushSubtasks(client, created, pending, userID); err != nil {
			// The parent is already persisted, so the form still
			// closes; resubmitting it would duplicate the task.
			return taskSavedMsg{warn: "Task saved, but a subtask failed: " + api.UserMessage(err)}
		}
		return taskSavedMsg{}
	}
}

// flushSubtasks creates the buffered subtasks against the persisted
// parent with bounded concurrency. Returns the first error seen.
func flushSubtasks(client *api.Client, parent *api.Task, pending []state.PendingSubtask, userID int) error {
	if len(pending) == 0 {
		return nil
	}

	sem := make(chan struct{}, maxConcurrentCreates)
	errs := make(chan error, len(pending))
	var wg sync.WaitGroup

	for _, sub := range pending {
		wg.Add(1)
		sub := sub
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			parentID := parent.ID
			draft := api.Task{
				Title:     sub.Title,
				Status:    sub.Status,
				DueDate:   parent.DueDate,
				Priority:  api.PriorityMedium,
				ProjectID: parent.ProjectID,
				ParentID:  &parentID,
				UserID:    userID,
			}
			if _, err := client.CreateTask(draft); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)
	return <-errs
}

// createSubtask creates a single subtask for the task being edited.
func (h *Handler) createSubtask(title string) tea.Cmd {
	form := h.Form
	if form == nil || form.Original == nil || strings.TrimSpace(title) == "" {
		return nil
	}

	parent := *form.Original
	client := h.Client
	userID := h.Session.ID

	return func() tea.Msg {
		parentID := parent.ID
		draft := api.Task{
			Title:     title,
			Status:    api.StatusPending,
			DueDate:   parent.DueDate,
			Priority:  api.PriorityMedium,
			ProjectID: parent.ProjectID,
			ParentID:  &parentID,
			UserID:    userID,
		}
		if _, err := client.CreateTask(draft); err != nil {
			return errMsg{err}
		}
		return subtaskCreatedMsg{}
	}
}

// confirmDelete issues the delete for the task held by the
// confirmation guard.
func (h *Handler) confirmDelete() tea.Cmd {
	task := h.ConfirmDelete
	h.ConfirmDelete = nil
	if task == nil {
		return nil
	}

	h.Loading = true
	client := h.Client
	id := task.ID

	return func() tea.Msg {
		if err := client.DeleteTask(id); err != nil {
			return errMsg{err}
		}
		return taskDeletedMsg{}
	}
}

// createProject submits the new-project prompt.
func (h *Handler) createProject() tea.Cmd {
	name := strings.TrimSpace(h.ProjectInput.Value())
	if name == "" {
		h.StatusMsg = "Project name is required"
		return nil
	}

	color := styles.ProjectPalette[h.ProjectColorIdx%len(styles.ProjectPalette)]
	h.Loading = true
	client := h.Client
	userID := h.Session.ID

	return func() tea.Msg {
		project, err := client.CreateProject(name, color, userID)
		if err != nil {
			return errMsg{err}
		}
		return projectCreatedMsg{project}
	}
}
