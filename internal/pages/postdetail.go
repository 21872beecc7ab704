package pages

import (
	"context"

	"github.com/hoangNguyenDev3/WanderSphere/internal/feed"
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// PostDetailView is the assembled single-post page: the post with its
// owner plus every comment joined with its author. A failed author lookup
// degrades to the fallback identity; the comment stays visible.
type PostDetailView struct {
	Post     models.PostWithUser
	Comments []models.CommentWithUser
}

// PostDetail loads a single post page.
func (s *Service) PostDetail(ctx context.Context, postID int64) (*PostDetailView, error) {
	post, err := s.api.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	view := &PostDetailView{
		Post: models.PostWithUser{Post: *post},
	}
	view.Post.IsLiked = post.LikedBy(s.session.ViewerID())

	if owner, err := s.api.GetProfile(ctx, post.UserID); err == nil {
		view.Post.User = *owner
	} else {
		view.Post.User = models.FallbackUser(post.UserID)
		view.Post.Degraded = true
	}

	authors := s.joinCommentAuthors(ctx, post.Comments)
	view.Comments = make([]models.CommentWithUser, len(post.Comments))
	for i, c := range post.Comments {
		author, ok := authors[c.UserID]
		if !ok {
			author = ownerJoin{user: models.FallbackUser(c.UserID), degraded: true}
		}
		view.Comments[i] = models.CommentWithUser{
			Comment:  c,
			User:     author.user,
			Degraded: author.degraded,
		}
	}
	return view, nil
}

func (s *Service) joinCommentAuthors(ctx context.Context, comments []models.Comment) map[int64]ownerJoin {
	seen := feed.IDSet{}
	var authorIDs []int64
	for _, c := range comments {
		if seen.Contains(c.UserID) {
			continue
		}
		seen.Add(c.UserID)
		authorIDs = append(authorIDs, c.UserID)
	}

	joined := feed.Assemble(ctx, authorIDs,
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

	out := make(map[int64]ownerJoin, len(authorIDs))
	for i, id := range authorIDs {
		out[id] = joined[i]
	}
	return out
}
