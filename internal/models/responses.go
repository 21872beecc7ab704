package models

// Response bodies for the WanderSphere REST API.

type MessageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// ErrorResponse is the backend's standardized error body.
type ErrorResponse struct {
	Code    int    `json:"code,omitempty"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type CreatePostResponse struct {
	Message string `json:"message"`
	PostID  int64  `json:"post_id"`
}

type UserFollowerResponse struct {
	FollowersIDs []int64 `json:"followers_ids"`
}

type UserFollowingResponse struct {
	FollowingsIDs []int64 `json:"followings_ids"`
}

type UserPostsResponse struct {
	PostsIDs []int64 `json:"posts_ids"`
}

type NewsfeedResponse struct {
	PostsIDs []int64 `json:"posts_ids"`
}

type SearchUsersResponse struct {
	Users []User `json:"users"`
}

type GetPresignedURLResponse struct {
	URL            string `json:"url"`
	ExpirationTime string `json:"expiration_time"`
}

// UploadBinaryResponse is the envelope returned by the multipart upload
// endpoint; Data.URL is the public URL of the stored file.
type UploadBinaryResponse struct {
	Success bool             `json:"success"`
	Data    UploadBinaryData `json:"data"`
}

type UploadBinaryData struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	UploadedAt  string `json:"uploaded_at,omitempty"`
}
