package api

import (
	"context"
	"fmt"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// GetFollowers returns the ids of users following userID, in the
// backend's display order.
func (c *Client) GetFollowers(ctx context.Context, userID int64) ([]int64, error) {
	var resp models.UserFollowerResponse
	if err := c.get(ctx, fmt.Sprintf("/friends/%d/followers", userID), &resp); err != nil {
		return nil, err
	}
	return resp.FollowersIDs, nil
}

// GetFollowing returns the ids of users userID follows.
func (c *Client) GetFollowing(ctx context.Context, userID int64) ([]int64, error) {
	var resp models.UserFollowingResponse
	if err := c.get(ctx, fmt.Sprintf("/friends/%d/followings", userID), &resp); err != nil {
		return nil, err
	}
	return resp.FollowingsIDs, nil
}

// GetUserPosts returns the ids of userID's posts, newest first.
func (c *Client) GetUserPosts(ctx context.Context, userID int64) ([]int64, error) {
	var resp models.UserPostsResponse
	if err := c.get(ctx, fmt.Sprintf("/friends/%d/posts", userID), &resp); err != nil {
		return nil, err
	}
	return resp.PostsIDs, nil
}

// FollowUser creates a follow edge from the authenticated user to userID.
func (c *Client) FollowUser(ctx context.Context, userID int64) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.post(ctx, fmt.Sprintf("/friends/%d", userID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UnfollowUser removes the follow edge to userID.
func (c *Client) UnfollowUser(ctx context.Context, userID int64) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.delete(ctx, fmt.Sprintf("/friends/%d", userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetNewsfeed returns the post ids of the authenticated user's newsfeed.
func (c *Client) GetNewsfeed(ctx context.Context) ([]int64, error) {
	var resp models.NewsfeedResponse
	if err := c.get(ctx, "/newsfeed", &resp); err != nil {
		return nil, err
	}
	return resp.PostsIDs, nil
}
