package api

import (
	"context"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// Login authenticates the user; the session cookie lands in the client's jar.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.LoginResponse
	if err := c.post(ctx, "/users/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account. It does not log the user in.
func (c *Client) Signup(ctx context.Context, req models.CreateUserRequest) (*models.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.MessageResponse
	if err := c.post(ctx, "/users/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout clears the server-side session.
func (c *Client) Logout(ctx context.Context) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.post(ctx, "/auth/logout", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
