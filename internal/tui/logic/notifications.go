package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/daywise/daywise-tui/internal/api"
)

// Due dates are day-granular, so reminders fire at a fixed local time.
const reminderHour = 9

// reminderWindow limits how late a reminder may fire. Opening the app
// well past the reminder time marks the task notified without a popup.
const reminderWindow = 60 * time.Minute

type checkDueMsg time.Time

func checkDueCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}

func (h *Handler) handleCheckDue(t time.Time) tea.Cmd {
	var cmds []tea.Cmd

	// Always schedule the next check.
	cmds = append(cmds, checkDueCmd())

	if h.Session == nil {
		return tea.Batch(cmds...)
	}

	for _, task := range h.Tasks {
		if h.NotifiedTasks[task.ID] || task.IsCompleted() || task.DueDate == "" {
			continue
		}

		dueDay, err := time.ParseInLocation(api.DateLayout, task.DueDate, time.Local)
		if err != nil {
			continue
		}
		dueTime := dueDay.Add(reminderHour * time.Hour)

		if t.Before(dueTime) {
			continue
		}

		if t.Sub(dueTime) > reminderWindow {
			// Too old to be useful; mark silently so it is not
			// reconsidered every minute.
			h.NotifiedTasks[task.ID] = true
			continue
		}

		h.NotifiedTasks[task.ID] = true

		title := task.Title
		heading := "Daywise"
		if task.ProjectID != nil {
			if p := h.ProjectByID(*task.ProjectID); p != nil {
				heading = p.Name
			}
		}

		cmds = append(cmds, func() tea.Msg {
			// Notification failures are not worth surfacing in the UI.
			_ = beeep.Notify(heading, "Task due: "+title, "")
			return nil
		})
	}

	return tea.Batch(cmds...)
}
