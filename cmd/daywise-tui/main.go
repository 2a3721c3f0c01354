// Package main is the entry point for the Daywise TUI application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/config"
	"github.com/daywise/daywise-tui/internal/tui"
	"github.com/daywise/daywise-tui/internal/tui/state"
)

const version = "0.1.0"

const helpText = `daywise-tui - Terminal client for the Daywise task manager

USAGE:
    daywise-tui [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --server URL    Daywise server address (overrides config)
    --view NAME     Start in a view (dashboard, today, upcoming,
                    calendar, priority, completed, projects)

CONFIGURATION:
    Config file: ~/.config/daywise-tui/config.yaml

    Run 'daywise-tui --init' to create a config template, then point
    it at your Daywise server. Sign in from inside the app; the
    session is remembered across restarts.

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        g/G         Go to top/bottom
        Tab         Next view
        1-7         Jump to view
        Enter       Open project / edit task
        Esc         Go back

    Task Actions:
        a           Add new task
        e           Edit selected task
        x / Space   Toggle completion
        d           Delete task (asks for confirmation)
        y           Copy task title

    Other:
        P           New project
        r           Refresh
        :           Command line
        ?           Show help
        q           Quit
`

const configTemplate = `# Daywise TUI Configuration
# Location: ~/.config/daywise-tui/config.yaml

server:
  # Address of the Daywise server.
  url: "http://localhost:5000"

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true

  # View shown at startup: dashboard, today, upcoming, calendar,
  # priority, completed or projects.
  default_view: "dashboard"
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		serverURL   string
		startView   string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&serverURL, "server", "", "Daywise server address")
	flag.StringVar(&startView, "view", "", "Start in a specific view")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("daywise-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(serverURL, startView)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Point server.url at your Daywise server")
	fmt.Println("  2. Run 'daywise-tui' and sign in")

	return nil
}

// runApp starts the main TUI application.
func runApp(serverURL, startView string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverURL != "" {
		cfg.Server.URL = serverURL
	}

	client := api.NewClient(cfg.Server.URL)

	// A stored session skips the sign-in screen. Failing to read it is
	// not fatal; the app just asks for credentials again.
	session, err := config.RestoreSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not restore session: %v\n", err)
		session = nil
	}

	if startView == "" {
		startView = cfg.UI.DefaultView
	}

	app := tui.NewApp(client, cfg, session, tabForName(startView))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func tabForName(name string) state.Tab {
	switch name {
	case "today":
		return state.TabToday
	case "upcoming":
		return state.TabUpcoming
	case "calendar":
		return state.TabCalendar
	case "priority":
		return state.TabPriority
	case "completed":
		return state.TabCompleted
	case "projects":
		return state.TabProjects
	default:
		return state.TabDashboard
	}
}
