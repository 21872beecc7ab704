package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// CreatePost publishes a new post.
func (c *Client) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.CreatePostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.CreatePostResponse
	if err := c.post(ctx, "/posts", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPost fetches a post's full detail record, including its likes set
// and comments.
func (c *Client) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post
	if err := c.get(ctx, fmt.Sprintf("/posts/%d", postID), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost edits an existing post owned by the authenticated user.
func (c *Client) UpdatePost(ctx context.Context, postID int64, req models.EditPostRequest) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.put(ctx, fmt.Sprintf("/posts/%d", postID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeletePost removes a post owned by the authenticated user.
func (c *Client) DeletePost(ctx context.Context, postID int64) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.delete(ctx, fmt.Sprintf("/posts/%d", postID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LikePost toggles the authenticated user's like on a post.
func (c *Client) LikePost(ctx context.Context, postID int64) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.post(ctx, fmt.Sprintf("/posts/%d/likes", postID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CommentOnPost adds a comment. Comment creation reuses the post path on
// the wire.
func (c *Client) CommentOnPost(ctx context.Context, postID int64, req models.CreatePostCommentRequest) (*models.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp models.MessageResponse
	if err := c.post(ctx, fmt.Sprintf("/posts/%d", postID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPresignedURL asks the backend for a presigned upload URL for the
// given file.
func (c *Client) GetPresignedURL(ctx context.Context, req models.GetPresignedURLRequest) (*models.GetPresignedURLResponse, error) {
	params := url.Values{
		"file_name": {req.FileName},
		"file_type": {req.FileType},
	}
	var resp models.GetPresignedURLResponse
	if err := c.get(ctx, queryPath("/posts/url", params), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
