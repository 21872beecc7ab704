package pages

import (
	"context"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// ProfileView is the assembled profile page: the user, their posts and
// the social counts shown in the header.
type ProfileView struct {
	User           models.User
	IsOwnProfile   bool
	IsFollowing    bool
	FollowerCount  int
	FollowingCount int
	Posts          []models.PostWithUser
}

// Profile loads a user's profile page. The profile record and the post id
// list are page-level; count fetches degrade to zero rather than blocking
// the page.
func (s *Service) Profile(ctx context.Context, userID int64) (*ProfileView, error) {
	user, err := s.api.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	postIDs, err := s.api.GetUserPosts(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		User:         *user,
		IsOwnProfile: s.session.ViewerID() == userID,
		Posts:        s.assemblePosts(ctx, postIDs),
	}

	if followers, err := s.api.GetFollowers(ctx, userID); err == nil {
		view.FollowerCount = len(followers)
		for _, id := range followers {
			if id == s.session.ViewerID() {
				view.IsFollowing = true
				break
			}
		}
	} else {
		s.log.Warn("failed to fetch follower count", "user_id", userID, "error", err)
	}

	if following, err := s.api.GetFollowing(ctx, userID); err == nil {
		view.FollowingCount = len(following)
	} else {
		s.log.Warn("failed to fetch following count", "user_id", userID, "error", err)
	}

	return view, nil
}
