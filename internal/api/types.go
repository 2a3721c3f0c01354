// Package api provides a client for the Daywise scheduler REST API.
package api

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used by the API (no time component).
const DateLayout = "2006-01-02"

// Task status values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Session is the authenticated identity returned by register/login.
type Session struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Task represents a Daywise task. ID is zero for unsaved drafts.
type Task struct {
	ID             int    `json:"id,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	DueDate        string `json:"dueDate"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	UserID         int    `json:"userId"`
	ProjectID      *int   `json:"projectId"`
	ParentID       *int   `json:"parentId"`
	IsRecurring    bool   `json:"isRecurring"`
	RecurrenceRule string `json:"recurrenceRule,omitempty"`
}

// Project represents a Daywise project.
type Project struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	UserID int    `json:"userId"`
}

// CredentialsRequest is the request body for register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateProjectRequest is the request body for creating a project.
type CreateProjectRequest struct {
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
	UserID int    `json:"userId"`
}

// IsCompleted reports whether the task is completed.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsSubtask reports whether the task is parented to another task.
func (t *Task) IsSubtask() bool {
	return t.ParentID != nil
}

// IsDueOn reports whether the task is due on the given date string.
// The API stores plain calendar dates, so this is string equality.
func (t *Task) IsDueOn(date string) bool {
	return t.DueDate != "" && t.DueDate == date
}

// IsDueAfter reports whether the task's due date is strictly after the
// given date string. ISO dates compare correctly as strings.
func (t *Task) IsDueAfter(date string) bool {
	return t.DueDate != "" && t.DueDate > date
}

// DueDisplay returns a human-readable due date relative to today.
func (t *Task) DueDisplay() string {
	if t.DueDate == "" {
		return ""
	}

	dueDate, err := time.Parse(DateLayout, t.DueDate)
	if err != nil {
		return t.DueDate
	}

	today, _ := time.Parse(DateLayout, time.Now().Format(DateLayout))
	diff := int(dueDate.Sub(today).Hours() / 24)

	switch {
	case diff < -1:
		return fmt.Sprintf("%d days ago", -diff)
	case diff == -1:
		return "yesterday"
	case diff == 0:
		return "today"
	case diff == 1:
		return "tomorrow"
	case diff < 7:
		return dueDate.Weekday().String()
	default:
		return dueDate.Format("Jan 2")
	}
}
