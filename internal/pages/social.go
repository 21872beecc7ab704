package pages

import (
	"context"

	"github.com/hoangNguyenDev3/WanderSphere/internal/feed"
)

// Followers loads the list of users following userID. Unfollowing from a
// followers list only flips the row's label; the list belongs to someone
// else's follow graph.
func (s *Service) Followers(ctx context.Context, userID int64) (*feed.FollowCollection, error) {
	ids, err := s.api.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	viewerFollowing := s.viewerFollowingSet(ctx)
	users := s.assembleUsers(ctx, ids)
	for i := range users {
		users[i].IsFollowing = viewerFollowing.Contains(users[i].UserID)
	}
	return feed.NewFollowCollection(users, feed.LabelOnly), nil
}

// Following loads the list of users userID follows. When the viewer looks
// at their own following list, every row is followed by definition and an
// unfollow removes the row; on someone else's list it only flips labels.
func (s *Service) Following(ctx context.Context, userID int64) (*feed.FollowCollection, error) {
	ids, err := s.api.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	isOwn := s.session.ViewerID() == userID
	users := s.assembleUsers(ctx, ids)
	if isOwn {
		for i := range users {
			users[i].IsFollowing = true
		}
		return feed.NewFollowCollection(users, feed.RemoveOnUnfollow), nil
	}

	viewerFollowing := s.viewerFollowingSet(ctx)
	for i := range users {
		users[i].IsFollowing = viewerFollowing.Contains(users[i].UserID)
	}
	return feed.NewFollowCollection(users, feed.LabelOnly), nil
}

// Search runs a backend user query and annotates the results with the
// viewer's follow state.
func (s *Service) Search(ctx context.Context, query string) (*feed.FollowCollection, error) {
	users, err := s.api.SearchUsers(ctx, query)
	if err != nil {
		return nil, err
	}

	reconciled := feed.ReconcileFollowState(s.viewerFollowingSet(ctx), users)
	return feed.NewFollowCollection(reconciled, feed.LabelOnly), nil
}
