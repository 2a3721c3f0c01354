package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// ListTasks returns all tasks owned by the given user.
func (c *Client) ListTasks(userID int) ([]Task, error) {
	query := url.Values{}
	query.Set("userId", strconv.Itoa(userID))

	tasks := make([]Task, 0)
	if err := c.GetWithQuery("/tasks", query, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a new task. The server assigns the identifier.
func (c *Client) CreateTask(draft Task) (*Task, error) {
	var task Task
	if err := c.Post("/tasks", draft, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask replaces an existing task. The API has full-replace
// semantics: callers must supply the complete desired record, not a
// partial patch.
func (c *Client) UpdateTask(id int, task Task) (*Task, error) {
	var updated Task
	if err := c.Put("/tasks/"+strconv.Itoa(id), task, &updated); err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return &updated, nil
}

// DeleteTask deletes a task. Cascading deletion of its subtasks is the
// server's responsibility.
func (c *Client) DeleteTask(id int) error {
	if err := c.Delete("/tasks/" + strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}
