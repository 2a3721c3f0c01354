package logic

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/config"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// CommandHandlerFunc handles a command execution.
type CommandHandlerFunc func(h *Handler, args []string) tea.Cmd

// CommandDef defines a command.
type CommandDef struct {
	Name        string
	Aliases     []string
	Description string
	Handler     CommandHandlerFunc
}

// CommandRegistry holds all available commands keyed by name and alias.
var CommandRegistry = map[string]CommandDef{}

func init() {
	registerCommands()
}

func registerCommands() {
	commands := []CommandDef{
		{
			Name:        "goto",
			Aliases:     []string{"g", "view"},
			Description: "Go to a view (dashboard, today, upcoming, calendar, priority, completed, projects)",
			Handler:     handleGoto,
		},
		{
			Name:        "add",
			Aliases:     []string{"a", "new"},
			Description: "Open the new task form",
			Handler:     handleAddCommand,
		},
		{
			Name:        "delete",
			Aliases:     []string{"d", "del", "rm"},
			Description: "Delete the selected task (asks for confirmation)",
			Handler:     handleDeleteCommand,
		},
		{
			Name:        "complete",
			Aliases:     []string{"c", "done"},
			Description: "Toggle completion of the selected task",
			Handler:     handleCompleteCommand,
		},
		{
			Name:        "project",
			Aliases:     []string{"p", "prj"},
			Description: "Open a project by name",
			Handler:     handleProjectCommand,
		},
		{
			Name:        "refresh",
			Aliases:     []string{"r", "reload"},
			Description: "Reload tasks and projects from the server",
			Handler:     handleRefreshCommand,
		},
		{
			Name:        "theme",
			Aliases:     []string{"t"},
			Description: "Switch theme (dark, light)",
			Handler:     handleThemeCommand,
		},
		{
			Name:        "set",
			Aliases:     []string{"se"},
			Description: "Change a setting and persist it (vim on|off, view <name>)",
			Handler:     handleSetCommand,
		},
		{
			Name:        "logout",
			Aliases:     []string{"lo"},
			Description: "Log out and return to the sign-in screen",
			Handler:     handleLogoutCommand,
		},
		{
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Description: "Quit application",
			Handler:     handleQuitCommand,
		},
		{
			Name:        "help",
			Aliases:     []string{"h", "?"},
			Description: "Show help",
			Handler:     handleHelpCommand,
		},
		{
			Name:        "commands",
			Aliases:     []string{"list", "ls"},
			Description: "List all available commands",
			Handler:     handleCommandsCommand,
		},
	}

	for _, cmd := range commands {
		CommandRegistry[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			CommandRegistry[alias] = cmd
		}
	}
}

// Core handlers

func handleGoto(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		h.StatusMsg = "Usage: :goto <view>"
		return nil
	}

	target := strings.ToLower(args[0])
	switch target {
	case "dashboard", "dash", "d":
		return h.switchToTab(state.TabDashboard)
	case "today", "t":
		return h.switchToTab(state.TabToday)
	case "upcoming", "u":
		return h.switchToTab(state.TabUpcoming)
	case "calendar", "cal", "c":
		return h.switchToTab(state.TabCalendar)
	case "priority", "pri":
		return h.switchToTab(state.TabPriority)
	case "completed", "done":
		return h.switchToTab(state.TabCompleted)
	case "projects", "p":
		return h.switchToTab(state.TabProjects)
	default:
		h.StatusMsg = fmt.Sprintf("Unknown view: %s", target)
		return nil
	}
}

func handleAddCommand(h *Handler, args []string) tea.Cmd {
	cmd := h.openCreateForm()
	// Arguments prefill the title: ":add water the plants".
	if len(args) > 0 && h.Form != nil {
		h.Form.Title.SetValue(strings.Join(args, " "))
		h.Form.Title.SetCursor(len(h.Form.Title.Value()))
	}
	return cmd
}

func handleDeleteCommand(h *Handler, args []string) tea.Cmd {
	return h.requestDelete()
}

func handleCompleteCommand(h *Handler, args []string) tea.Cmd {
	return h.toggleSelected()
}

func handleProjectCommand(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		return h.switchToTab(state.TabProjects)
	}

	query := strings.Join(args, " ")

	if h.CurrentTab != state.TabProjects {
		h.switchToTab(state.TabProjects)
	}

	for i := range h.Projects {
		if strings.EqualFold(h.Projects[i].Name, query) {
			id := h.Projects[i].ID
			h.ProjectCursor = i
			h.OpenProjectID = &id
			h.FocusedPane = state.PaneMain
			h.TaskCursor = 0
			return nil
		}
	}

	h.StatusMsg = fmt.Sprintf("Project not found: %s", query)
	return nil
}

func handleRefreshCommand(h *Handler, args []string) tea.Cmd {
	return h.refresh()
}

func handleThemeCommand(h *Handler, args []string) tea.Cmd {
	theme := h.Theme
	if len(args) > 0 {
		theme = strings.ToLower(args[0])
	} else if theme == config.ThemeDark {
		theme = config.ThemeLight
	} else {
		theme = config.ThemeDark
	}

	if theme != config.ThemeDark && theme != config.ThemeLight {
		h.StatusMsg = "Usage: :theme [dark|light]"
		return nil
	}

	h.Theme = theme
	styles.ApplyTheme(theme)
	h.StatusMsg = "Theme: " + theme

	return func() tea.Msg {
		if err := config.SaveTheme(theme); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func handleSetCommand(h *Handler, args []string) tea.Cmd {
	if len(args) < 2 {
		h.StatusMsg = "Usage: :set vim on|off, :set view <name>"
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "vim":
		switch strings.ToLower(args[1]) {
		case "on", "true":
			h.Config.UI.VimMode = true
		case "off", "false":
			h.Config.UI.VimMode = false
		default:
			h.StatusMsg = "Usage: :set vim on|off"
			return nil
		}
		h.StatusMsg = "Vim keys: " + strings.ToLower(args[1])
	case "view":
		name := strings.ToLower(args[1])
		switch name {
		case "dashboard", "today", "upcoming", "calendar", "priority", "completed", "projects":
			h.Config.UI.DefaultView = name
			h.StatusMsg = "Default view: " + name
		default:
			h.StatusMsg = fmt.Sprintf("Unknown view: %s", name)
			return nil
		}
	default:
		h.StatusMsg = fmt.Sprintf("Unknown setting: %s", args[0])
		return nil
	}

	cfg := h.Config
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func handleLogoutCommand(h *Handler, args []string) tea.Cmd {
	return h.logout()
}

func handleQuitCommand(h *Handler, args []string) tea.Cmd {
	return tea.Quit
}

func handleHelpCommand(h *Handler, args []string) tea.Cmd {
	h.ShowHelp = true
	return nil
}

func handleCommandsCommand(h *Handler, args []string) tea.Cmd {
	uniqueCmds := make(map[string]bool)
	var names []string

	for _, cmd := range CommandRegistry {
		if !uniqueCmds[cmd.Name] {
			uniqueCmds[cmd.Name] = true
			names = append(names, cmd.Name)
		}
	}

	sort.Strings(names)
	h.StatusMsg = "Commands: " + strings.Join(names, ", ")
	return nil
}

// Helpers

func (h *Handler) executeCommand(input string) tea.Cmd {
	h.CommandLine.Active = false
	h.CommandLine.Input.Reset()

	if len(h.CommandLine.History) == 0 || h.CommandLine.History[len(h.CommandLine.History)-1] != input {
		h.CommandLine.History = append(h.CommandLine.History, input)
	}
	h.CommandLine.HistoryCursor = -1

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	if cmdDef, ok := CommandRegistry[cmdName]; ok {
		return cmdDef.Handler(h, args)
	}

	h.StatusMsg = fmt.Sprintf("Unknown command: %s", cmdName)
	return nil
}

func (h *Handler) autocompleteCommand() tea.Cmd {
	input := h.CommandLine.Input.Value()
	if input == "" {
		return nil
	}

	var matches []string
	for name := range CommandRegistry {
		if strings.HasPrefix(name, input) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	if len(matches) > 0 {
		h.CommandLine.Input.SetValue(matches[0] + " ")
		h.CommandLine.Input.SetCursor(len(matches[0]) + 1)
	}

	return nil
}

func (h *Handler) commandHistoryPrev() tea.Cmd {
	if len(h.CommandLine.History) == 0 {
		return nil
	}

	if h.CommandLine.HistoryCursor == -1 {
		h.CommandLine.HistoryCursor = len(h.CommandLine.History) - 1
	} else if h.CommandLine.HistoryCursor > 0 {
		h.CommandLine.HistoryCursor--
	}

	if h.CommandLine.HistoryCursor >= 0 && h.CommandLine.HistoryCursor < len(h.CommandLine.History) {
		h.CommandLine.Input.SetValue(h.CommandLine.History[h.CommandLine.HistoryCursor])
		h.CommandLine.Input.SetCursor(len(h.CommandLine.Input.Value()))
	}
	return nil
}

func (h *Handler) commandHistoryNext() tea.Cmd {
	if len(h.CommandLine.History) == 0 || h.CommandLine.HistoryCursor == -1 {
		return nil
	}

	if h.CommandLine.HistoryCursor < len(h.CommandLine.History)-1 {
		h.CommandLine.HistoryCursor++
		h.CommandLine.Input.SetValue(h.CommandLine.History[h.CommandLine.HistoryCursor])
		h.CommandLine.Input.SetCursor(len(h.CommandLine.Input.Value()))
	} else {
		h.CommandLine.HistoryCursor = -1
		h.CommandLine.Input.SetValue("")
	}
	return nil
}
