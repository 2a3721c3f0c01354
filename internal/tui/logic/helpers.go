package logic

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
)

// moveCursor moves the cursor for the focused list. The projects
// sidebar has its own cursor; everything else shares the task cursor.
func (h *Handler) moveCursor(delta int) {
	if h.CurrentTab == state.TabProjects && h.FocusedPane == state.PaneSidebar {
		h.ProjectCursor += delta
		if h.ProjectCursor < 0 {
			h.ProjectCursor = 0
		}
		if max := len(h.Projects) - 1; h.ProjectCursor > max && max >= 0 {
			h.ProjectCursor = max
		}
		if len(h.Projects) == 0 {
			h.ProjectCursor = 0
		}
		return
	}
	h.coordinator.MoveCursor(delta)
}

func (h *Handler) moveCursorTop() {
	if h.CurrentTab == state.TabProjects && h.FocusedPane == state.PaneSidebar {
		h.ProjectCursor = 0
		return
	}
	h.TaskCursor = 0
}

func (h *Handler) moveCursorBottom() {
	if h.CurrentTab == state.TabProjects && h.FocusedPane == state.PaneSidebar {
		if len(h.Projects) > 0 {
			h.ProjectCursor = len(h.Projects) - 1
		}
		return
	}
	if n := h.coordinator.CurrentView().ItemCount(); n > 0 {
		h.TaskCursor = n - 1
	}
}

// switchToTab switches tabs through the coordinator. The cache is not
// refetched: the target view projects whatever is already loaded.
func (h *Handler) switchToTab(tab state.Tab) tea.Cmd {
	h.TaskCursor = 0
	h.coordinator.SwitchToTab(tab)
	return nil
}

func (h *Handler) nextTab(delta int) tea.Cmd {
	tabs := state.GetTabDefinitions()
	idx := (int(h.CurrentTab) + delta + len(tabs)) % len(tabs)
	return h.switchToTab(tabs[idx].Tab)
}

// selectedProject returns the project under the sidebar cursor.
func (h *Handler) selectedProject() *api.Project {
	if h.ProjectCursor < 0 || h.ProjectCursor >= len(h.Projects) {
		return nil
	}
	p := h.Projects[h.ProjectCursor]
	return &p
}

func (h *Handler) openCreateForm() tea.Cmd {
	form := state.NewCreateForm(h.Projects)
	// Creating from inside an open project preselects it.
	if h.CurrentTab == state.TabProjects && h.OpenProjectID != nil {
		for i, p := range h.Projects {
			if p.ID == *h.OpenProjectID {
				form.ProjectIdx = i + 1
				break
			}
		}
	}
	h.Form = form
	return nil
}

func (h *Handler) openEditForm() tea.Cmd {
	task := h.coordinator.SelectedTask()
	if task == nil {
		return nil
	}
	h.Form = state.NewEditForm(task, h.Projects)
	return nil
}

func (h *Handler) toggleSelected() tea.Cmd {
	task := h.coordinator.SelectedTask()
	if task == nil {
		return nil
	}
	return h.toggleTask(task.ID)
}

// requestDelete arms the confirmation guard; no request is issued
// until the user confirms.
func (h *Handler) requestDelete() tea.Cmd {
	task := h.coordinator.SelectedTask()
	if task == nil {
		return nil
	}
	h.ConfirmDelete = task
	return nil
}

func (h *Handler) yankSelected() tea.Cmd {
	task := h.coordinator.SelectedTask()
	if task == nil {
		return nil
	}
	title := task.Title
	return func() tea.Msg {
		if err := clipboard.WriteAll(title); err != nil {
			return errMsg{err}
		}
		return statusMsg{"Yanked: " + title}
	}
}
