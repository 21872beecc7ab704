package models

// PostWithUser is a post joined with its owning user's profile, as the
// pages display it. User is always populated; when the profile lookup
// failed it holds the fallback identity and Degraded is set. When the post
// fetch itself failed, Degraded is set and the post body is the placeholder.
type PostWithUser struct {
	Post
	User     User `json:"user"`
	IsLiked  bool `json:"is_liked"`
	Degraded bool `json:"-"`
}

// UserWithFollowStatus is a user annotated with the viewer's follow state.
type UserWithFollowStatus struct {
	User
	IsFollowing bool `json:"is_following"`
	Degraded    bool `json:"-"`
}

// CommentWithUser is a comment joined with its author's profile.
type CommentWithUser struct {
	Comment
	User     User `json:"user"`
	Degraded bool `json:"-"`
}
