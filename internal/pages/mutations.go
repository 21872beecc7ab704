package pages

import (
	"context"
	"io"

	"github.com/hoangNguyenDev3/WanderSphere/internal/feed"
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// Login authenticates the viewer and caches the returned identity.
func (s *Service) Login(ctx context.Context, userName, password string) (*models.User, error) {
	resp, err := s.api.Login(ctx, models.LoginRequest{UserName: userName, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.session.SetViewer(resp.User); err != nil {
		s.log.Warn("failed to persist viewer", "error", err)
	}
	return &resp.User, nil
}

// Signup registers a new account.
func (s *Service) Signup(ctx context.Context, req models.CreateUserRequest) error {
	_, err := s.api.Signup(ctx, req)
	return err
}

// Logout clears the server session and the cached viewer. A failed
// network call still clears local state; the cookie simply expires
// server-side.
func (s *Service) Logout(ctx context.Context) {
	if _, err := s.api.Logout(ctx); err != nil {
		s.log.Warn("logout request failed", "error", err)
	}
	s.session.Clear()
}

// ToggleLike applies the like toggle locally before the network call; a
// failed request reverts the toggle and notifies. Returns the post's
// liked state after the operation settles.
func (s *Service) ToggleLike(ctx context.Context, post *models.PostWithUser) bool {
	viewer, ok := s.session.Viewer()
	if !ok {
		s.notifier.Error("You must be logged in to like posts")
		return post.IsLiked
	}

	change := feed.ApplyOptimisticLike(post, viewer.UserID)
	if _, err := s.api.LikePost(ctx, post.PostID); err != nil {
		feed.RevertOptimisticLike(post, change)
		s.notifier.Error("Failed to like post")
	}
	return post.IsLiked
}

// ToggleFollow applies an optimistic follow or unfollow to the collection
// and fires the matching network call; failure inverts the local change
// and notifies.
func (s *Service) ToggleFollow(ctx context.Context, col *feed.FollowCollection, targetID int64, follow bool) {
	change := col.ApplyOptimisticFollow(targetID, follow)

	var err error
	if follow {
		_, err = s.api.FollowUser(ctx, targetID)
	} else {
		_, err = s.api.UnfollowUser(ctx, targetID)
	}
	if err != nil {
		col.Revert(change)
		s.notifier.Error("Failed to update follow status")
		return
	}

	if follow {
		s.notifier.Success("User followed!")
	} else {
		s.notifier.Success("User unfollowed!")
	}
}

// Follow creates a follow edge to targetID, outside any viewed list.
func (s *Service) Follow(ctx context.Context, targetID int64) error {
	if _, err := s.api.FollowUser(ctx, targetID); err != nil {
		s.notifier.Error("Failed to update follow status")
		return err
	}
	s.notifier.Success("User followed!")
	return nil
}

// Unfollow removes the follow edge to targetID.
func (s *Service) Unfollow(ctx context.Context, targetID int64) error {
	if _, err := s.api.UnfollowUser(ctx, targetID); err != nil {
		s.notifier.Error("Failed to update follow status")
		return err
	}
	s.notifier.Success("User unfollowed!")
	return nil
}

// DeletePost removes a post owned by the viewer.
func (s *Service) DeletePost(ctx context.Context, postID int64) error {
	if _, err := s.api.DeletePost(ctx, postID); err != nil {
		s.notifier.Error("Failed to delete post")
		return err
	}
	s.notifier.Success("Post deleted")
	return nil
}

// AddComment posts a comment and returns the refreshed post record. Ids
// originate server-side, so the new comment only appears after refetch.
func (s *Service) AddComment(ctx context.Context, postID int64, text string) (*models.Post, error) {
	req := models.CreatePostCommentRequest{ContentText: text}
	if _, err := s.api.CommentOnPost(ctx, postID, req); err != nil {
		s.notifier.Error("Failed to add comment")
		return nil, err
	}
	return s.api.GetPost(ctx, postID)
}

// CreatePost publishes a new post, uploading any local images first.
func (s *Service) CreatePost(ctx context.Context, text string, imagePaths []string) (int64, error) {
	resp, err := s.api.CreatePost(ctx, models.CreatePostRequest{
		ContentText:      text,
		ContentImagePath: imagePaths,
	})
	if err != nil {
		s.notifier.Error("Failed to create post")
		return 0, err
	}
	s.notifier.Success("Post created!")
	return resp.PostID, nil
}

// EditPost updates a post owned by the viewer.
func (s *Service) EditPost(ctx context.Context, postID int64, req models.EditPostRequest) error {
	if _, err := s.api.UpdatePost(ctx, postID, req); err != nil {
		s.notifier.Error("Failed to update post")
		return err
	}
	s.notifier.Success("Post updated")
	return nil
}

// EditProfile updates the viewer's mutable profile fields and merges the
// accepted changes into the cached viewer record.
func (s *Service) EditProfile(ctx context.Context, req models.EditUserRequest) error {
	if _, err := s.api.UpdateProfile(ctx, req); err != nil {
		s.notifier.Error("Failed to update profile")
		return err
	}

	if viewer, ok := s.session.Viewer(); ok {
		if req.FirstName != "" {
			viewer.FirstName = req.FirstName
		}
		if req.LastName != "" {
			viewer.LastName = req.LastName
		}
		if req.DateOfBirth != "" {
			viewer.DateOfBirth = req.DateOfBirth
		}
		if req.ProfilePicture != "" {
			viewer.ProfilePicture = req.ProfilePicture
		}
		if req.CoverPicture != "" {
			viewer.CoverPicture = req.CoverPicture
		}
		if err := s.session.SetViewer(viewer); err != nil {
			s.log.Warn("failed to persist updated viewer", "error", err)
		}
	}
	s.notifier.Success("Profile updated!")
	return nil
}

// UploadImage pushes a local file through the binaries endpoint and
// returns its public URL for use in a post or profile update.
func (s *Service) UploadImage(ctx context.Context, fileName, contentType string, r io.Reader) (string, error) {
	url, err := s.api.UploadFile(ctx, fileName, contentType, r)
	if err != nil {
		s.notifier.Error("Failed to upload image")
		return "", err
	}
	return url, nil
}
