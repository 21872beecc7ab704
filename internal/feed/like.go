package feed

import (
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// LikeChange records an applied optimistic like toggle.
type LikeChange struct {
	ViewerID int64
	Liked    bool
}

// ApplyOptimisticLike toggles the viewer's membership in the post's likes
// set immediately; the displayed count follows the set, not the server.
// The returned change lets the caller revert if the request fails.
func ApplyOptimisticLike(p *models.PostWithUser, viewerID int64) LikeChange {
	target := !p.LikedBy(viewerID)
	p.SetLiked(viewerID, target)
	p.IsLiked = target
	return LikeChange{ViewerID: viewerID, Liked: target}
}

// RevertOptimisticLike inverts a previously applied like toggle.
func RevertOptimisticLike(p *models.PostWithUser, change LikeChange) {
	p.SetLiked(change.ViewerID, !change.Liked)
	p.IsLiked = !change.Liked
}
