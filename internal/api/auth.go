package api

import "fmt"

// Register creates a new account and returns the resulting session identity.
func (c *Client) Register(username, password string) (*Session, error) {
	var session Session
	req := CredentialsRequest{Username: username, Password: password}
	if err := c.Post("/register", req, &session); err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	return &session, nil
}

// Login authenticates with the given credentials and returns the session
// identity.
func (c *Client) Login(username, password string) (*Session, error) {
	var session Session
	req := CredentialsRequest{Username: username, Password: password}
	if err := c.Post("/login", req, &session); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	return &session, nil
}
