package models

import (
	"regexp"
	"time"
)

const (
	maxPostTextLen    = 2000
	minCommentTextLen = 1
	maxCommentTextLen = 500
	maxPostImages     = 4
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9~!@#$%^&*()\-_=+{}\|;:'",<.>/?]+$`)
)

// Validate checks the login request before it leaves the client.
func (r LoginRequest) Validate() error {
	if !validUsername(r.UserName) {
		return NewValidationError("user_name must be 4-200 alphanumeric characters")
	}
	if !validPassword(r.Password) {
		return NewValidationError("password must be 4-200 characters")
	}
	return nil
}

// Validate checks the signup request before it leaves the client.
func (r CreateUserRequest) Validate() error {
	if !validUsername(r.UserName) {
		return NewValidationError("user_name must be 4-200 alphanumeric characters")
	}
	if !validPassword(r.Password) {
		return NewValidationError("password must be 4-200 characters")
	}
	if r.Email == "" {
		return NewValidationError("email is required")
	}
	if _, err := time.Parse(time.DateOnly, r.DateOfBirth); err != nil {
		return NewValidationError("date_of_birth must be YYYY-MM-DD")
	}
	return nil
}

// Validate checks the profile edit request. All fields are optional.
func (r EditUserRequest) Validate() error {
	if r.Password != "" && !validPassword(r.Password) {
		return NewValidationError("password must be 4-200 characters")
	}
	if r.DateOfBirth != "" {
		if _, err := time.Parse(time.DateOnly, r.DateOfBirth); err != nil {
			return NewValidationError("date_of_birth must be YYYY-MM-DD")
		}
	}
	return nil
}

// Validate checks post body and image count bounds.
func (r CreatePostRequest) Validate() error {
	if len(r.ContentText) > maxPostTextLen {
		return NewValidationError("content_text must be at most 2000 characters")
	}
	if len(r.ContentImagePath) > maxPostImages {
		return NewValidationError("a post can carry at most 4 images")
	}
	return nil
}

// Validate checks comment body bounds.
func (r CreatePostCommentRequest) Validate() error {
	if len(r.ContentText) < minCommentTextLen {
		return NewValidationError("comment text is required")
	}
	if len(r.ContentText) > maxCommentTextLen {
		return NewValidationError("comment text must be at most 500 characters")
	}
	return nil
}

func validUsername(s string) bool {
	if len(s) < 4 || len(s) > 200 {
		return false
	}
	return usernamePattern.MatchString(s)
}

func validPassword(s string) bool {
	if len(s) < 4 || len(s) > 200 {
		return false
	}
	return passwordPattern.MatchString(s)
}
