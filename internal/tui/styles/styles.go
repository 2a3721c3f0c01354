// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/config"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Priority colors.
var (
	PriorityHighColor   = lipgloss.Color("#D0473D")
	PriorityMediumColor = lipgloss.Color("#EA8811")
	PriorityLowColor    = lipgloss.Color("#296FDF")
)

// ApplyTheme forces the palette side matching the persisted theme
// preference instead of relying on background detection.
func ApplyTheme(theme string) {
	lipgloss.SetHasDarkBackground(theme != config.ThemeLight)
}

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// EmptyState is for the explicit no-content message every view
	// renders instead of a blank container.
	EmptyState = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true).
			PaddingLeft(2)
)

// Task styles
var (
	// TaskItem is the base style for a task item
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskSelected is the style for a selected task
	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// TaskCompleted is the style for completed tasks
	TaskCompleted = lipgloss.NewStyle().
			PaddingLeft(2).
			Faint(true).
			Strikethrough(true)

	// TaskDue is for due date display
	TaskDue = lipgloss.NewStyle().
		Foreground(Subtle).
		PaddingLeft(1)

	// TaskDueToday is for tasks due today
	TaskDueToday = lipgloss.NewStyle().
			Foreground(SuccessColor).
			PaddingLeft(1)

	// TaskProjectTag is for the project tag on a task row
	TaskProjectTag = lipgloss.NewStyle().
			Foreground(Highlight).
			PaddingLeft(1)

	// TaskRecurring is for the recurring badge
	TaskRecurring = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#00AAAA", Dark: "#00CCCC"}).
			PaddingLeft(1)

	// TaskDescription is for descriptions in task lists
	TaskDescription = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true).
			Italic(true).
			PaddingLeft(6)
)

// Priority styles
var (
	TaskPriorityHigh   = lipgloss.NewStyle().Foreground(PriorityHighColor).Bold(true)
	TaskPriorityMedium = lipgloss.NewStyle().Foreground(PriorityMediumColor)
	TaskPriorityLow    = lipgloss.NewStyle().Foreground(PriorityLowColor)
)

// GetPriorityStyle returns the appropriate style for a task priority.
func GetPriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case api.PriorityHigh:
		return TaskPriorityHigh
	case api.PriorityMedium:
		return TaskPriorityMedium
	default:
		return TaskPriorityLow
	}
}

// Tab bar styles
var (
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Padding(0, 1).
			Underline(true)

	TabInactive = lipgloss.NewStyle().
			Foreground(Subtle).
			Padding(0, 1)
)

// Stat card styles (dashboard counters)
var (
	StatCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginRight(1)

	StatValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	StatLabel = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Dialog styles
var (
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			MarginBottom(1)

	ConfirmPrompt = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Padding(1, 2)
)

// Status line styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle)

	StatusToast = lipgloss.NewStyle().
			Foreground(SuccessColor)

	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Form styles
var (
	InputLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	FieldFocused = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	HelpText = lipgloss.NewStyle().
			Foreground(Subtle)
)

// TabBar is the container for the top tab row.
var TabBar = lipgloss.NewStyle().
	Padding(0, 1).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(Subtle)

// ProjectPalette holds the colors offered when creating a project.
var ProjectPalette = []string{
	"#6366f1", "#ef4444", "#f59e0b", "#10b981",
	"#3b82f6", "#8b5cf6", "#ec4899",
}

// ProjectColor builds a style for a project's server-assigned hex color.
func ProjectColor(hex string) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle().Foreground(Subtle)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
