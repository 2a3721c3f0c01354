// Package ui renders the application to the terminal. It reads shared
// state and never mutates it.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
	"github.com/daywise/daywise-tui/internal/tui/views"
)

// Renderer draws the whole screen from shared state.
type Renderer struct {
	*state.State
	coordinator *views.Coordinator
}

// NewRenderer creates the renderer.
func NewRenderer(s *state.State, c *views.Coordinator) *Renderer {
	return &Renderer{State: s, coordinator: c}
}

// View renders one frame. Every projection is recomputed from the
// cache, so any mutation made during Update shows up here without an
// explicit re-render call.
func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	if r.Screen == state.ScreenAuth {
		return r.renderAuth()
	}

	tabBar := r.renderTabBar()
	bottomBar := r.renderBottomBar()

	contentHeight := r.Height - lipgloss.Height(tabBar) - lipgloss.Height(bottomBar) - 2
	if contentHeight < 3 {
		contentHeight = 3
	}
	contentWidth := r.Width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	content := r.coordinator.Render(contentWidth, contentHeight)
	content = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Top,
		styles.App.Render(content))

	screen := lipgloss.JoinVertical(lipgloss.Left, tabBar, content, bottomBar)

	// Overlays replace the frame with a centered dialog.
	switch {
	case r.ConfirmDelete != nil:
		return r.overlay(r.renderConfirmDelete())
	case r.Form != nil:
		return r.overlay(r.renderTaskForm())
	case r.IsCreatingProject:
		return r.overlay(r.renderProjectPrompt())
	case r.ShowHelp:
		return r.overlay(r.renderHelp())
	}

	return screen
}

func (r *Renderer) overlay(dialog string) string {
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}

// cachedSubtasks lists the persisted subtasks of a parent task.
func (r *Renderer) cachedSubtasks(parentID int) []api.Task {
	return views.Subtasks(r.Tasks, parentID)
}

// renderTabBar renders the top tab row.
func (r *Renderer) renderTabBar() string {
	tabs := state.GetTabDefinitions()
	useShortLabels := r.Width < 90

	var tabStrs []string
	for i, t := range tabs {
		label := t.Name
		if useShortLabels {
			label = t.ShortName
		}
		label = fmt.Sprintf("%d %s", i+1, label)

		if r.CurrentTab == t.Tab {
			tabStrs = append(tabStrs, styles.TabActive.Render(label))
		} else {
			tabStrs = append(tabStrs, styles.TabInactive.Render(label))
		}
	}

	tabLine := strings.Join(tabStrs, " ")
	maxWidth := r.Width - 4
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}

	return styles.TabBar.Width(r.Width - 2).Render(tabLine)
}

// renderBottomBar renders the command line when active, otherwise the
// status line.
func (r *Renderer) renderBottomBar() string {
	if r.CommandLine.Active {
		return r.CommandLine.Input.View()
	}
	return r.renderStatusLine()
}

func (r *Renderer) renderStatusLine() string {
	var left string
	switch {
	case r.Err != nil:
		left = styles.StatusError.Render(api.UserMessage(r.Err))
	case r.StatusMsg != "":
		left = styles.StatusToast.Render(r.StatusMsg)
	default:
		left = styles.StatusBar.Render("? help  : command  q quit")
	}

	var right string
	if r.Loading {
		right = r.Spinner.View() + " " + styles.StatusBar.Render("syncing")
	} else if r.Session != nil {
		right = styles.StatusBar.Render(r.Session.Username)
	}

	gap := r.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return " " + left + strings.Repeat(" ", gap) + right
}
