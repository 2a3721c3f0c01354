package logic

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
)

// Update implements tea.Model.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case checkDueMsg:
		return h.handleCheckDue(time.Time(msg))

	case errMsg:
		h.Loading = false
		h.Err = msg.err
		return nil

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil

	case dataLoadedMsg:
		return h.handleDataLoaded(msg)

	case taskSavedMsg:
		h.Loading = false
		h.Form = nil
		if msg.warn != "" {
			h.StatusMsg = msg.warn
		} else {
			h.StatusMsg = "Task saved"
		}
		return h.refresh()

	case taskDeletedMsg:
		h.Loading = false
		h.StatusMsg = "Task deleted"
		return h.refresh()

	case toggleFailedMsg:
		// The optimistic flip no longer matches the server; a full
		// refresh restores server truth.
		h.StatusMsg = api.UserMessage(msg.err)
		return h.refresh()

	case subtaskCreatedMsg:
		h.Loading = false
		h.StatusMsg = "Subtask created"
		return h.refresh()

	case projectCreatedMsg:
		h.Loading = false
		h.IsCreatingProject = false
		h.ProjectInput.Reset()
		h.StatusMsg = fmt.Sprintf("Created project: %s", msg.project.Name)
		return h.refresh()

	case authDoneMsg:
		return h.handleAuthDone(msg)

	case refreshMsg:
		return h.refresh()
	}

	// Forward non-key messages (like cursor blink) to active inputs.
	if h.Screen == state.ScreenAuth {
		return h.updateAuthInputs(msg)
	}

	if h.Form != nil {
		return h.Form.Update(msg)
	}

	if h.IsCreatingProject {
		var cmd tea.Cmd
		h.ProjectInput, cmd = h.ProjectInput.Update(msg)
		return cmd
	}

	if h.CommandLine.Active {
		var cmd tea.Cmd
		h.CommandLine.Input, cmd = h.CommandLine.Input.Update(msg)
		return cmd
	}

	return nil
}

func (h *Handler) handleDataLoaded(msg dataLoadedMsg) tea.Cmd {
	if msg.gen != h.FetchGen {
		// A newer refresh or a logout superseded this response.
		return nil
	}

	h.Loading = false
	h.Err = nil

	// Wholesale replace. A failed project fetch leaves the projects
	// empty rather than stale; task visibility is never blocked by it.
	h.Tasks = msg.tasks
	h.Projects = msg.projects
	if msg.projectsErr != nil {
		h.StatusMsg = "Projects unavailable: " + api.UserMessage(msg.projectsErr)
	}

	// The cache shrank or grew; clamp the cursor to the active view.
	h.coordinator.MoveCursor(0)

	return nil
}

func (h *Handler) updateAuthInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if h.AuthFocus == 0 {
		h.UsernameInput, cmd = h.UsernameInput.Update(msg)
	} else {
		h.PasswordInput, cmd = h.PasswordInput.Update(msg)
	}
	return cmd
}
