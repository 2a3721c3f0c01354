package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// ListProjects returns all projects owned by the given user.
func (c *Client) ListProjects(userID int) ([]Project, error) {
	query := url.Values{}
	query.Set("userId", strconv.Itoa(userID))

	projects := make([]Project, 0)
	if err := c.GetWithQuery("/projects", query, &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProject creates a new project. Projects are never updated or
// deleted through this client.
func (c *Client) CreateProject(name, color string, userID int) (*Project, error) {
	var project Project
	req := CreateProjectRequest{Name: name, Color: color, UserID: userID}
	if err := c.Post("/projects", req, &project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}
