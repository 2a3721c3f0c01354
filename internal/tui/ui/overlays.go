package ui

import (
	"fmt"
	"strings"

	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// renderTaskForm renders the add/edit task form dialog.
func (r *Renderer) renderTaskForm() string {
	f := r.Form

	var b strings.Builder

	title := "Add Task"
	if f.Mode == state.FormModeEdit {
		title = "Edit Task"
	}
	b.WriteString(styles.DialogTitle.Render(title) + "\n\n")

	b.WriteString(r.fieldLabel("Title", state.FormFieldTitle) + "\n")
	b.WriteString(f.Title.View() + "\n\n")

	b.WriteString(r.fieldLabel("Description", state.FormFieldDescription) + "\n")
	b.WriteString(f.Description.View() + "\n\n")

	b.WriteString(r.fieldLabel("Due date", state.FormFieldDue) + "\n")
	b.WriteString(f.DueDate.View() + "\n\n")

	b.WriteString(r.fieldLabel("Priority", state.FormFieldPriority) + "  ")
	b.WriteString(styles.GetPriorityStyle(f.Priority).Render("< " + f.Priority + " >"))
	b.WriteString("\n\n")

	b.WriteString(r.fieldLabel("Project", state.FormFieldProject) + "  ")
	if id := f.SelectedProjectID(); id != nil {
		project := f.AvailableProjects[f.ProjectIdx-1]
		b.WriteString(styles.ProjectColor(project.Color).Render("< " + project.Name + " >"))
	} else {
		b.WriteString(styles.StatusBar.Render("< none >"))
	}
	b.WriteString("\n\n")

	b.WriteString(r.fieldLabel("Recurrence", state.FormFieldRecurrence))
	if f.IsRecurring {
		b.WriteString("  " + styles.TaskRecurring.Render("↻ on"))
	} else {
		b.WriteString("  " + styles.StatusBar.Render("off (Ctrl+R)"))
	}
	b.WriteString("\n")
	if f.IsRecurring {
		b.WriteString(f.Recurrence.View())
	}
	b.WriteString("\n\n")

	b.WriteString(r.renderSubtaskField())
	b.WriteString("\n")

	submit := "[ Save ]"
	if f.FocusIndex == state.FormFieldSubmit {
		submit = styles.FieldFocused.Render("[ Save ]")
	}
	b.WriteString(submit + "\n\n")

	b.WriteString(styles.HelpText.Render("Tab: next field  Ctrl+S: save  Esc: cancel"))

	return styles.Dialog.Width(r.dialogWidth()).Render(b.String())
}

// renderSubtaskField renders the subtask section of the form. Create
// mode shows the draft buffer; edit mode shows the already persisted
// subtasks plus an input that creates immediately.
func (r *Renderer) renderSubtaskField() string {
	f := r.Form

	var b strings.Builder
	b.WriteString(r.fieldLabel("Subtasks", state.FormFieldSubtasks) + "\n")

	if f.Mode == state.FormModeCreate {
		if len(f.PendingSubtasks) == 0 && !f.AddingSubtask {
			b.WriteString(styles.StatusBar.Render("  none (Enter to add)") + "\n")
		}
		focused := f.FocusIndex == state.FormFieldSubtasks
		for i, sub := range f.PendingSubtasks {
			line := "  • " + sub.Title
			if focused && !f.AddingSubtask && i == f.SubtaskCursor {
				line = styles.TaskSelected.Render(line)
			}
			b.WriteString(line + "\n")
		}
	} else if f.Original != nil {
		subtasks := r.cachedSubtasks(f.Original.ID)
		if len(subtasks) == 0 && !f.AddingSubtask {
			b.WriteString(styles.StatusBar.Render("  none (Enter to add)") + "\n")
		}
		for _, sub := range subtasks {
			check := "[ ]"
			if sub.IsCompleted() {
				check = "[x]"
			}
			b.WriteString("  " + check + " " + sub.Title + "\n")
		}
	}

	if f.AddingSubtask {
		b.WriteString("  " + f.SubtaskInput.View() + "\n")
	}

	return b.String()
}

func (r *Renderer) fieldLabel(name string, field int) string {
	if r.Form != nil && r.Form.FocusIndex == field {
		return styles.FieldFocused.Render("▸ " + name)
	}
	return styles.InputLabel.Render("  " + name)
}

func (r *Renderer) dialogWidth() int {
	w := r.Width - 8
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

// renderConfirmDelete renders the destructive-action guard.
func (r *Renderer) renderConfirmDelete() string {
	task := r.ConfirmDelete

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Delete task?") + "\n\n")
	b.WriteString(fmt.Sprintf("%q will be permanently deleted,\nalong with all of its subtasks.\n\n", task.Title))
	b.WriteString(styles.HelpText.Render("y: delete  n: cancel"))

	return styles.ConfirmPrompt.Render(b.String())
}

// renderProjectPrompt renders the new-project dialog.
func (r *Renderer) renderProjectPrompt() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("New Project") + "\n\n")
	b.WriteString(styles.InputLabel.Render("Name") + "\n")
	b.WriteString(r.ProjectInput.View() + "\n\n")

	b.WriteString(styles.InputLabel.Render("Color") + "  ")
	for i, color := range styles.ProjectPalette {
		dot := "●"
		if i == r.ProjectColorIdx {
			dot = "◉"
		}
		b.WriteString(styles.ProjectColor(color).Render(dot) + " ")
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HelpText.Render("Enter: create  ←/→: color  Esc: cancel"))

	return styles.Dialog.Width(44).Render(b.String())
}

// renderHelp renders the key binding overlay.
func (r *Renderer) renderHelp() string {
	rows := [][2]string{
		{"j/k or ↑/↓", "move cursor"},
		{"g / G", "top / bottom"},
		{"Tab / Shift+Tab", "next / previous view"},
		{"1-7", "jump to view"},
		{"Enter", "open project / edit task"},
		{"a", "add task"},
		{"e", "edit task"},
		{"x or Space", "toggle completion"},
		{"d", "delete task (asks first)"},
		{"y", "copy task title"},
		{"P", "new project"},
		{"r", "refresh"},
		{":", "command line"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keys") + "\n\n")
	for _, row := range rows {
		key := styles.FieldFocused.Render(fmt.Sprintf("%-16s", row[0]))
		b.WriteString(key + " " + styles.StatusBar.Render(row[1]) + "\n")
	}
	b.WriteString("\n" + styles.HelpText.Render("Any key to close"))

	return styles.Dialog.Width(48).Render(b.String())
}
