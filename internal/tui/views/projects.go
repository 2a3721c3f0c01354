package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// ProjectsView shows one summary card per project in a sidebar;
// selecting a project lists its tasks in the main panel.
type ProjectsView struct {
	*BaseView
}

// NewProjectsView creates a new ProjectsView.
func NewProjectsView(s *state.State) *ProjectsView {
	return &ProjectsView{BaseView: NewBaseView(s)}
}

func (v *ProjectsView) Name() string { return "projects" }

func (v *ProjectsView) OnEnter() {
	v.State.TaskCursor = 0
	v.State.ProjectCursor = 0
	v.State.OpenProjectID = nil
	v.State.FocusedPane = state.PaneSidebar
}

func (v *ProjectsView) openTasks() []api.Task {
	if v.State.OpenProjectID == nil {
		return nil
	}
	return ProjectTasks(v.State.Tasks, *v.State.OpenProjectID)
}

func (v *ProjectsView) ItemCount() int {
	if v.State.FocusedPane == state.PaneMain {
		return len(v.openTasks())
	}
	return len(v.State.Projects)
}

func (v *ProjectsView) SelectedTask() *api.Task {
	if v.State.FocusedPane != state.PaneMain {
		return nil
	}
	return taskAt(v.openTasks(), v.State.TaskCursor)
}

// SelectedProject returns the project under the sidebar cursor, or nil.
func (v *ProjectsView) SelectedProject() *api.Project {
	if v.State.ProjectCursor < 0 || v.State.ProjectCursor >= len(v.State.Projects) {
		return nil
	}
	p := v.State.Projects[v.State.ProjectCursor]
	return &p
}

func (v *ProjectsView) Render(width, height int) string {
	sidebarWidth := width / 3
	if sidebarWidth > 40 {
		sidebarWidth = 40
	}

	sidebar := v.renderSidebar(sidebarWidth)
	main := v.renderMain(width - sidebarWidth - 2)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main)
}

func (v *ProjectsView) renderSidebar(width int) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Projects"))
	sb.WriteString("\n\n")

	summaries := ProjectSummaries(v.State.Projects, v.State.Tasks)
	if len(summaries) == 0 {
		sb.WriteString(styles.EmptyState.Render("No projects yet. Press P to create one."))
		return lipgloss.NewStyle().Width(width).Render(sb.String())
	}

	for i, s := range summaries {
		name := styles.ProjectColor(s.Project.Color).Render("● ") + Truncate(s.Project.Name, width-12)
		line := name + styles.StatusBar.Render(
			" "+renderCount(s.Pending+s.Completed))

		selected := i == v.State.ProjectCursor && v.State.FocusedPane == state.PaneSidebar
		if selected {
			sb.WriteString(styles.TaskSelected.Render(line))
		} else {
			sb.WriteString(styles.TaskItem.Render(line))
		}
		sb.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Render(strings.TrimRight(sb.String(), "\n"))
}

func (v *ProjectsView) renderMain(width int) string {
	if v.State.OpenProjectID == nil {
		return styles.EmptyState.Render("Select a project to see its tasks.")
	}

	var sb strings.Builder
	if p := v.State.ProjectByID(*v.State.OpenProjectID); p != nil {
		sb.WriteString(styles.ProjectColor(p.Color).Bold(true).Render(p.Name))
	} else {
		sb.WriteString(styles.Subtitle.Render("(no project)"))
	}
	sb.WriteString("\n\n")

	cursor := -1
	if v.State.FocusedPane == state.PaneMain {
		cursor = v.State.TaskCursor
	}
	sb.WriteString(v.renderTaskList(v.openTasks(), cursor, width,
		"No tasks in this project."))
	return sb.String()
}
