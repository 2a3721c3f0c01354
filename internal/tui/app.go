// Package tui wires the state, update loop and renderer into a single
// Bubble Tea model.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/config"
	"github.com/daywise/daywise-tui/internal/tui/logic"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
	"github.com/daywise/daywise-tui/internal/tui/ui"
)

// App is the top-level Bubble Tea model.
type App struct {
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp builds the application model. A non-nil session skips the
// auth screen.
func NewApp(client *api.Client, cfg *config.Config, session *api.Session, startTab state.Tab) *App {
	s := state.New(client, cfg)
	s.Theme = config.LoadTheme()
	styles.ApplyTheme(s.Theme)
	s.CurrentTab = startTab

	if session != nil {
		s.Session = session
		s.Screen = state.ScreenApp
	}

	handler := logic.NewHandler(s)
	return &App{
		handler:  handler,
		renderer: ui.NewRenderer(s, handler.Coordinator()),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
