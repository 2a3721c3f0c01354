// Package logic contains the update loop and data synchronization for
// the TUI. The handler mutates shared state in response to messages;
// rendering picks the changes up on the next frame.
package logic

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/views"
)

// Handler owns the update loop. It embeds the shared state and drives
// the view coordinator.
type Handler struct {
	*state.State
	coordinator *views.Coordinator
}

// NewHandler creates the handler for the given state.
func NewHandler(s *state.State) *Handler {
	return &Handler{
		State:       s,
		coordinator: views.NewCoordinator(s),
	}
}

// Coordinator exposes the view coordinator for rendering.
func (h *Handler) Coordinator() *views.Coordinator {
	return h.coordinator
}

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	cmds := []tea.Cmd{
		h.Spinner.Tick,
		textinput.Blink,
		checkDueCmd(),
	}

	// A restored session skips the auth screen and loads data directly.
	if h.Screen == state.ScreenApp && h.Session != nil {
		cmds = append(cmds, h.refresh())
	}

	return tea.Batch(cmds...)
}

// refresh fetches tasks and projects concurrently and replaces the
// cache wholesale on success. Each refresh bumps the fetch generation
// and carries the new value, so the handler can drop a response once
// a newer refresh or a logout has superseded it.
func (h *Handler) refresh() tea.Cmd {
	if h.Session == nil {
		return nil
	}

	h.Loading = true
	h.FetchGen++
	gen := h.FetchGen
	userID := h.Session.ID
	client := h.Client

	return func() tea.Msg {
		type taskResult struct {
			data []api.Task
			err  error
		}
		type projectResult struct {
			data []api.Project
			err  error
		}

		taskChan := make(chan taskResult, 1)
		projChan := make(chan projectResult, 1)

		go func() {
			t, e := client.ListTasks(userID)
			taskChan <- taskResult{data: t, err: e}
		}()

		go func() {
			p, e := client.ListProjects(userID)
			projChan <- projectResult{data: p, err: e}
		}()

		tRes := <-taskChan
		pRes := <-projChan

		if tRes.err != nil {
			return errMsg{tRes.err}
		}

		// A failed project fetch alone degrades project tags, not the
		// task list, so it rides along instead of aborting the load.
		return dataLoadedMsg{
			gen:         gen,
			tasks:       tRes.data,
			projects:    pRes.data,
			projectsErr: pRes.err,
		}
	}
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }
type dataLoadedMsg struct {
	gen         int
	tasks       []api.Task
	projects    []api.Project
	projectsErr error
}
type taskSavedMsg struct{ warn string }
type taskDeletedMsg struct{}
type toggleFailedMsg struct{ err error }
type subtaskCreatedMsg struct{}
type projectCreatedMsg struct{ project *api.Project }
type authDoneMsg struct{ session *api.Session }
type refreshMsg struct{}
