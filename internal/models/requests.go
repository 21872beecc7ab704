package models

// Request bodies for the WanderSphere REST API.

type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	UserName    string `json:"user_name"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Email       string `json:"email"`
}

type EditUserRequest struct {
	Password       string `json:"password,omitempty"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CoverPicture   string `json:"cover_picture,omitempty"`
}

type CreatePostRequest struct {
	ContentText      string   `json:"content_text"`
	ContentImagePath []string `json:"content_image_path,omitempty"`
	Visible          *bool    `json:"visible,omitempty"`
}

type EditPostRequest struct {
	ContentText      *string   `json:"content_text,omitempty"`
	ContentImagePath *[]string `json:"content_image_path,omitempty"`
	Visible          *bool     `json:"visible,omitempty"`
}

type CreatePostCommentRequest struct {
	ContentText string `json:"content_text"`
}

type GetPresignedURLRequest struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
}
