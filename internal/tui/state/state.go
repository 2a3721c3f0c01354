// Package state holds the shared application state for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/config"
)

// Screen represents the top-level screen.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenApp
)

// AuthMode selects between the login and register panels.
type AuthMode int

const (
	AuthLogin AuthMode = iota
	AuthRegister
)

// Tab represents a top-level view tab. Every tab is backed by a renderer
// projecting the one shared cache; switching tabs never refetches.
type Tab int

const (
	TabDashboard Tab = iota
	TabToday
	TabUpcoming
	TabCalendar
	TabPriority
	TabCompleted
	TabProjects
)

// Pane represents which pane is focused (only used in the Projects tab).
type Pane int

const (
	PaneSidebar Pane = iota
	PaneMain
)

// CommandLine holds the `:` command prompt state.
type CommandLine struct {
	Active        bool
	Input         textinput.Model
	History       []string
	HistoryCursor int
}

// State holds the application state. Constructed once at startup and
// passed by reference; there are no package-level singletons.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config

	// Identity. Nil until login/restore succeeds; immutable afterwards
	// until logout clears it.
	Session *api.Session

	// Cache: the single source of truth for every view. Wholesale
	// replaced on each successful refresh, emptied on logout.
	Tasks    []api.Task
	Projects []api.Project

	// FetchGen is bumped whenever the context a fetch was issued in
	// becomes stale (new refresh, logout). Responses carrying an older
	// generation are discarded instead of applied.
	FetchGen int

	// View state
	Screen      Screen
	CurrentTab  Tab
	FocusedPane Pane

	// List state
	TaskCursor    int
	ProjectCursor int

	// Projects view: currently opened project, nil when browsing cards.
	OpenProjectID *int

	// Auth screen state
	AuthMode      AuthMode
	UsernameInput textinput.Model
	PasswordInput textinput.Model
	AuthFocus     int

	// UI state
	Loading   bool
	Err       error
	StatusMsg string
	Width     int
	Height    int
	Theme     string

	// Destructive-action guard: task awaiting delete confirmation.
	ConfirmDelete *api.Task

	// Help overlay
	ShowHelp bool

	// New project prompt
	IsCreatingProject bool
	ProjectInput      textinput.Model
	ProjectColorIdx   int

	// Task form, nil while closed.
	Form *TaskForm

	// Command line
	CommandLine CommandLine

	// Tasks already notified about this run.
	NotifiedTasks map[int]bool

	// Components
	Spinner spinner.Model
}

// New creates the application state for a session lifecycle.
func New(client *api.Client, cfg *config.Config) *State {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 80
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	cmdInput := textinput.New()
	cmdInput.Prompt = ":"

	return &State{
		Client:        client,
		Config:        cfg,
		Screen:        ScreenAuth,
		CurrentTab:    TabDashboard,
		UsernameInput: username,
		PasswordInput: password,
		CommandLine:   CommandLine{Input: cmdInput, HistoryCursor: -1},
		NotifiedTasks: make(map[int]bool),
		Spinner:       sp,
	}
}

// ClearCache empties the task/project cache and bumps the fetch
// generation so in-flight responses are dropped on arrival.
func (s *State) ClearCache() {
	s.Tasks = nil
	s.Projects = nil
	s.FetchGen++
	s.TaskCursor = 0
	s.ProjectCursor = 0
	s.OpenProjectID = nil
}

// TaskByID returns a pointer into the cache for the given task id, or nil.
func (s *State) TaskByID(id int) *api.Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// ProjectByID returns the cached project with the given id, or nil. A
// task referencing a missing project must still render, just without a
// project tag.
func (s *State) ProjectByID(id int) *api.Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// TabInfo holds tab metadata.
type TabInfo struct {
	Tab       Tab
	Name      string
	ShortName string
}

// GetTabDefinitions returns the tab definitions in display order.
func GetTabDefinitions() []TabInfo {
	return []TabInfo{
		{TabDashboard, "Dashboard", "Dash"},
		{TabToday, "Today", "Tdy"},
		{TabUpcoming, "Upcoming", "Up"},
		{TabCalendar, "Calendar", "Cal"},
		{TabPriority, "Priority", "Pri"},
		{TabCompleted, "Completed", "Done"},
		{TabProjects, "Projects", "Prj"},
	}
}
