package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLikesSetSemantics(t *testing.T) {
	post := Post{PostID: 1, UsersLiked: []int64{3, 5}}

	assert.True(t, post.LikedBy(3))
	assert.False(t, post.LikedBy(7))

	// Adding the same viewer twice must not duplicate.
	post.SetLiked(7, true)
	post.SetLiked(7, true)
	assert.Equal(t, []int64{3, 5, 7}, post.UsersLiked)
	assert.Equal(t, 3, post.LikeCount())

	// Removing twice is equally idempotent.
	post.SetLiked(7, false)
	post.SetLiked(7, false)
	assert.Equal(t, []int64{3, 5}, post.UsersLiked)
}

func TestFallbackUserEchoesKnownID(t *testing.T) {
	u := FallbackUser(7)
	assert.Equal(t, int64(7), u.UserID)
	assert.Equal(t, "user7", u.UserName)
	assert.Equal(t, "User 7", u.FullName())
	assert.Equal(t, "user7@example.com", u.Email)
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{
			name:    "valid login",
			err:     LoginRequest{UserName: "wanderer_1", Password: "s3cret"}.Validate(),
			wantErr: false,
		},
		{
			name:    "username too short",
			err:     LoginRequest{UserName: "ab", Password: "s3cret"}.Validate(),
			wantErr: true,
		},
		{
			name:    "username with spaces",
			err:     LoginRequest{UserName: "bad name", Password: "s3cret"}.Validate(),
			wantErr: true,
		},
		{
			name: "signup with bad date",
			err: CreateUserRequest{
				UserName: "wanderer_1", Password: "s3cret",
				Email: "w@example.com", DateOfBirth: "01-01-1990",
			}.Validate(),
			wantErr: true,
		},
		{
			name:    "post body at limit",
			err:     CreatePostRequest{ContentText: strings.Repeat("a", 2000)}.Validate(),
			wantErr: false,
		},
		{
			name:    "post body over limit",
			err:     CreatePostRequest{ContentText: strings.Repeat("a", 2001)}.Validate(),
			wantErr: true,
		},
		{
			name: "too many images",
			err: CreatePostRequest{
				ContentText:      "hi",
				ContentImagePath: []string{"a", "b", "c", "d", "e"},
			}.Validate(),
			wantErr: true,
		},
		{
			name:    "empty comment",
			err:     CreatePostCommentRequest{ContentText: ""}.Validate(),
			wantErr: true,
		},
		{
			name:    "comment at limit",
			err:     CreatePostCommentRequest{ContentText: strings.Repeat("b", 500)}.Validate(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				require.Error(t, tt.err)
				var appErr *AppError
				require.ErrorAs(t, tt.err, &appErr)
				assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			} else {
				assert.NoError(t, tt.err)
			}
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(NewUnauthorizedError("nope")))
	assert.False(t, IsUnauthorized(NewValidationError("bad")))
	assert.False(t, IsUnauthorized(nil))
}
