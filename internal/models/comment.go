package models

// Comment represents a comment on a post.
type Comment struct {
	CommentID   int64  `json:"comment_id"`
	PostID      int64  `json:"post_id"`
	UserID      int64  `json:"user_id"`
	ContentText string `json:"content_text"`
}
