package logic

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/config"
	"github.com/daywise/daywise-tui/internal/tui/state"
)

// submitAuth runs the login or register call for the auth screen.
func (h *Handler) submitAuth() tea.Cmd {
	username := strings.TrimSpace(h.UsernameInput.Value())
	password := h.PasswordInput.Value()
	if username == "" || password == "" {
		h.Err = nil
		h.StatusMsg = "Username and password are required"
		return nil
	}

	h.Loading = true
	h.Err = nil
	client := h.Client
	mode := h.AuthMode

	return func() tea.Msg {
		var (
			session *api.Session
			err     error
		)
		if mode == state.AuthRegister {
			session, err = client.Register(username, password)
		} else {
			session, err = client.Login(username, password)
		}
		if err != nil {
			return errMsg{err}
		}
		return authDoneMsg{session: session}
	}
}

func (h *Handler) handleAuthDone(msg authDoneMsg) tea.Cmd {
	h.Loading = false
	h.Err = nil
	h.Session = msg.session
	h.Screen = state.ScreenApp
	h.PasswordInput.Reset()
	h.StatusMsg = "Welcome, " + msg.session.Username

	// Persisting the session is best effort; failing only means the
	// next start asks for credentials again.
	if err := config.SaveSession(msg.session); err != nil {
		h.StatusMsg = "Signed in (session not persisted)"
	}

	return h.refresh()
}

// logout drops the session and returns to the auth screen. Bumping the
// generation through ClearCache makes any in-flight fetch a no-op.
func (h *Handler) logout() tea.Cmd {
	h.ClearCache()
	h.Session = nil
	h.Screen = state.ScreenAuth
	h.AuthMode = state.AuthLogin
	h.AuthFocus = 0
	h.Form = nil
	h.ConfirmDelete = nil
	h.IsCreatingProject = false
	h.CommandLine.Active = false
	h.ShowHelp = false
	h.Err = nil
	h.StatusMsg = "Logged out"

	h.PasswordInput.Reset()
	h.PasswordInput.Blur()
	h.UsernameInput.Reset()
	h.UsernameInput.Focus()

	return func() tea.Msg {
		if err := config.ClearSession(); err != nil {
			return errMsg{err}
		}
		return nil
	}
}
