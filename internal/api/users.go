package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// GetProfile fetches a user's full profile record by id.
func (c *Client) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile edits the authenticated user's mutable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, req models.EditUserRequest) (*models.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.MessageResponse
	if err := c.put(ctx, "/users/edit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchUsers runs a backend user query and returns the matching users.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	params := url.Values{"q": {query}}
	var resp models.SearchUsersResponse
	if err := c.get(ctx, queryPath("/users/search", params), &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}
