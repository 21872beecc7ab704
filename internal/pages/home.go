package pages

import (
	"context"

	"github.com/hoangNguyenDev3/WanderSphere/internal/feed"
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// Home loads the viewer's newsfeed: the id list is authoritative for
// order and length; every id yields exactly one feed item, degraded if
// its joins failed.
func (s *Service) Home(ctx context.Context) ([]models.PostWithUser, error) {
	ids, err := s.api.GetNewsfeed(ctx)
	if err != nil {
		return nil, err
	}
	return s.assemblePosts(ctx, ids), nil
}

// assemblePosts runs the two-stage join: post ids to post records, then
// post owners to profiles. Owner profiles are fetched once per distinct
// user and merged back positionally.
func (s *Service) assemblePosts(ctx context.Context, ids []int64) []models.PostWithUser {
	viewerID := s.session.ViewerID()

	posts := feed.Assemble(ctx, ids,
		func(ctx context.Context, id int64) (models.PostWithUser, error) {
			p, err := s.api.GetPost(ctx, id)
			if err != nil {
				return models.PostWithUser{}, err
			}
			return models.PostWithUser{Post: *p}, nil
		},
		func(id int64) models.PostWithUser {
			return models.PostWithUser{Post: models.FallbackPost(id), Degraded: true}
		})

	owners := s.joinOwners(ctx, posts)
	for i := range posts {
		owner, ok := owners[posts[i].UserID]
		if !ok {
			owner = ownerJoin{user: models.FallbackUser(posts[i].UserID), degraded: true}
		}
		posts[i].User = owner.user
		if owner.degraded {
			posts[i].Degraded = true
		}
		posts[i].IsLiked = posts[i].LikedBy(viewerID)
	}
	return posts
}

type ownerJoin struct {
	user     models.User
	degraded bool
}

func (s *Service) joinOwners(ctx context.Context, posts []models.PostWithUser) map[int64]ownerJoin {
	seen := feed.IDSet{}
	var ownerIDs []int64
	for _, p := range posts {
		if p.UserID == 0 || seen.Contains(p.UserID) {
			continue
		}
		seen.Add(p.UserID)
		ownerIDs = append(ownerIDs, p.UserID)
	}

	joined := feed.Assemble(ctx, ownerIDs,
		func(ctx context.Context, id int64) (ownerJoin, error) {
			u, err := s.api.GetProfile(ctx, id)
			if err != nil {
				return ownerJoin{}, err
			}
			return ownerJoin{user: *u}, nil
		},
		func(id int64) ownerJoin {
			return ownerJoin{user: models.FallbackUser(id), degraded: true}
		})

	out := make(map[int64]ownerJoin, len(ownerIDs))
	for i, id := range ownerIDs {
		out[id] = joined[i]
	}
	return out
}
