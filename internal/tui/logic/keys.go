package logic

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if h.Screen == state.ScreenAuth {
		return h.handleAuthKeys(msg)
	}

	// Modal layers take priority over list navigation, innermost first.
	if h.ConfirmDelete != nil {
		return h.handleConfirmDeleteKeys(msg)
	}
	if h.Form != nil {
		return h.handleFormKeys(msg)
	}
	if h.IsCreatingProject {
		return h.handleProjectPromptKeys(msg)
	}
	if h.CommandLine.Active {
		return h.handleCommandLineKeys(msg)
	}
	if h.ShowHelp {
		h.ShowHelp = false
		return nil
	}

	return h.handleListKeys(msg)
}

func (h *Handler) handleAuthKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return tea.Quit

	case "tab", "shift+tab", "up", "down":
		h.AuthFocus = 1 - h.AuthFocus
		if h.AuthFocus == 0 {
			h.PasswordInput.Blur()
			h.UsernameInput.Focus()
		} else {
			h.UsernameInput.Blur()
			h.PasswordInput.Focus()
		}
		return textinput.Blink

	case "ctrl+r":
		if h.AuthMode == state.AuthLogin {
			h.AuthMode = state.AuthRegister
		} else {
			h.AuthMode = state.AuthLogin
		}
		h.Err = nil
		return nil

	case "enter":
		if h.AuthFocus == 0 {
			h.AuthFocus = 1
			h.UsernameInput.Blur()
			h.PasswordInput.Focus()
			return textinput.Blink
		}
		return h.submitAuth()
	}

	return h.updateAuthInputs(msg)
}

func (h *Handler) handleConfirmDeleteKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		return h.confirmDelete()
	case "n", "esc":
		// Declining issues no request at all.
		h.ConfirmDelete = nil
		h.StatusMsg = "Delete cancelled"
		return nil
	}
	return nil
}

func (h *Handler) handleProjectPromptKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.IsCreatingProject = false
		h.ProjectInput.Reset()
		return nil
	case "enter":
		return h.createProject()
	case "left", "ctrl+p":
		h.ProjectColorIdx = (h.ProjectColorIdx - 1 + len(styles.ProjectPalette)) % len(styles.ProjectPalette)
		return nil
	case "right", "ctrl+n":
		h.ProjectColorIdx = (h.ProjectColorIdx + 1) % len(styles.ProjectPalette)
		return nil
	}

	var cmd tea.Cmd
	h.ProjectInput, cmd = h.ProjectInput.Update(msg)
	return cmd
}

func (h *Handler) handleCommandLineKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.CommandLine.Active = false
		h.CommandLine.Input.Reset()
		h.CommandLine.HistoryCursor = -1
		return nil
	case "enter":
		return h.executeCommand(h.CommandLine.Input.Value())
	case "up":
		return h.commandHistoryPrev()
	case "down":
		return h.commandHistoryNext()
	case "tab":
		return h.autocompleteCommand()
	}

	var cmd tea.Cmd
	h.CommandLine.Input, cmd = h.CommandLine.Input.Update(msg)
	return cmd
}

func (h *Handler) handleListKeys(msg tea.KeyMsg) tea.Cmd {
	vim := h.Config.UI.VimMode
	key := msg.String()

	switch key {
	case "q":
		return tea.Quit

	case ":":
		h.CommandLine.Active = true
		h.CommandLine.Input.Focus()
		return textinput.Blink

	case "?":
		h.ShowHelp = true
		return nil

	case "down":
		h.moveCursor(1)
		return nil
	case "up":
		h.moveCursor(-1)
		return nil

	case "tab":
		return h.nextTab(1)
	case "shift+tab":
		return h.nextTab(-1)

	case "1", "2", "3", "4", "5", "6", "7":
		return h.switchToTab(state.Tab(int(key[0] - '1')))

	case "a":
		return h.openCreateForm()
	case "e":
		return h.openEditForm()
	case "x", " ":
		return h.toggleSelected()
	case "d":
		return h.requestDelete()
	case "r":
		return h.refresh()
	case "y":
		return h.yankSelected()
	case "P":
		h.IsCreatingProject = true
		h.ProjectInput.Focus()
		return textinput.Blink

	case "enter":
		return h.handleSelect()
	case "esc", "backspace":
		return h.handleBack()
	}

	if vim {
		switch key {
		case "j":
			h.moveCursor(1)
			return nil
		case "k":
			h.moveCursor(-1)
			return nil
		case "g":
			h.moveCursorTop()
			return nil
		case "G":
			h.moveCursorBottom()
			return nil
		case "l":
			return h.nextTab(1)
		case "h":
			return h.nextTab(-1)
		}
	}

	return nil
}

// handleSelect acts on enter. In the Projects tab it opens the project
// under the sidebar cursor; elsewhere it edits the selected task.
func (h *Handler) handleSelect() tea.Cmd {
	if h.CurrentTab == state.TabProjects && h.FocusedPane == state.PaneSidebar {
		project := h.selectedProject()
		if project == nil {
			return nil
		}
		id := project.ID
		h.OpenProjectID = &id
		h.FocusedPane = state.PaneMain
		h.TaskCursor = 0
		return nil
	}
	return h.openEditForm()
}

// handleBack closes the opened project in the Projects tab.
func (h *Handler) handleBack() tea.Cmd {
	if h.CurrentTab == state.TabProjects && h.FocusedPane == state.PaneMain {
		h.FocusedPane = state.PaneSidebar
		h.OpenProjectID = nil
		h.TaskCursor = 0
	}
	return nil
}

func (h *Handler) handleFormKeys(msg tea.KeyMsg) tea.Cmd {
	form := h.Form

	switch msg.String() {
	case "esc":
		if form.AddingSubtask {
			form.AddingSubtask = false
			form.SubtaskInput.Blur()
			form.SubtaskInput.Reset()
			return nil
		}
		h.Form = nil
		return nil

	case "tab":
		form.NextField()
		return textinput.Blink
	case "shift+tab":
		form.PrevField()
		return textinput.Blink

	case "ctrl+r":
		form.IsRecurring = !form.IsRecurring
		return nil

	case "ctrl+s":
		return h.saveTask()
	}

	switch form.FocusIndex {
	case state.FormFieldPriority:
		switch msg.String() {
		case "left":
			form.CyclePriority(-1)
			return nil
		case "right":
			form.CyclePriority(1)
			return nil
		}

	case state.FormFieldProject:
		switch msg.String() {
		case "left":
			form.CycleProject(-1)
			return nil
		case "right":
			form.CycleProject(1)
			return nil
		}

	case state.FormFieldSubtasks:
		return h.handleSubtaskFieldKeys(msg)

	case state.FormFieldSubmit:
		if msg.String() == "enter" {
			return h.saveTask()
		}
	}

	if msg.String() == "enter" {
		form.NextField()
		return textinput.Blink
	}

	return form.Update(msg)
}

func (h *Handler) handleSubtaskFieldKeys(msg tea.KeyMsg) tea.Cmd {
	form := h.Form

	if form.AddingSubtask {
		if msg.String() == "enter" {
			if form.Mode == state.FormModeEdit {
				// An edit-mode parent already exists server-side, so the
				// subtask is created immediately instead of buffered.
				title := form.SubtaskInput.Value()
				form.SubtaskInput.Reset()
				return h.createSubtask(title)
			}
			form.AddPendingSubtask()
			return nil
		}
		return form.Update(msg)
	}

	switch msg.String() {
	case "enter":
		form.AddingSubtask = true
		form.SubtaskInput.Focus()
		return textinput.Blink
	case "up":
		if form.SubtaskCursor > 0 {
			form.SubtaskCursor--
		}
		return nil
	case "down":
		if form.SubtaskCursor < len(form.PendingSubtasks)-1 {
			form.SubtaskCursor++
		}
		return nil
	case "d", "delete":
		form.RemovePendingSubtask(form.SubtaskCursor)
		return nil
	}

	return nil
}
