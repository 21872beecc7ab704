package models

// Post represents a post as returned by the API. UsersLiked has set
// semantics: it never contains duplicate user ids.
type Post struct {
	PostID           int64     `json:"post_id"`
	UserID           int64     `json:"user_id"`
	ContentText      string    `json:"content_text"`
	ContentImagePath []string  `json:"content_image_path"`
	CreatedAt        string    `json:"created_at"`
	UsersLiked       []int64   `json:"users_liked"`
	Comments         []Comment `json:"comments"`
}

// LikedBy reports whether the given viewer is in the post's likes set.
func (p *Post) LikedBy(viewerID int64) bool {
	for _, id := range p.UsersLiked {
		if id == viewerID {
			return true
		}
	}
	return false
}

// LikeCount returns the number of users who liked the post.
func (p *Post) LikeCount() int {
	return len(p.UsersLiked)
}

// SetLiked applies a toggle-by-target-state to the likes set: it adds or
// removes the viewer so that membership matches liked. Applying the same
// target state twice is a no-op, which keeps racing optimistic updates
// from double-flipping.
func (p *Post) SetLiked(viewerID int64, liked bool) {
	if liked {
		if !p.LikedBy(viewerID) {
			p.UsersLiked = append(p.UsersLiked, viewerID)
		}
		return
	}
	out := p.UsersLiked[:0]
	for _, id := range p.UsersLiked {
		if id != viewerID {
			out = append(out, id)
		}
	}
	p.UsersLiked = out
}

// FallbackPost synthesizes a placeholder for a post whose detail fetch
// failed, preserving its position in the assembled feed.
func FallbackPost(id int64) Post {
	return Post{
		PostID:     id,
		UsersLiked: []int64{},
		Comments:   []Comment{},
	}
}
