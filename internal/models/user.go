// Package models contains data structures for the application's domain models.
package models

import "fmt"

// User represents a WanderSphere user as returned by the API.
type User struct {
	UserID         int64  `json:"user_id"`
	UserName       string `json:"user_name"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CoverPicture   string `json:"cover_picture,omitempty"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// FallbackUser synthesizes a minimal stand-in for a user whose profile
// lookup failed. It echoes the known id so the owning item stays visible.
func FallbackUser(id int64) User {
	return User{
		UserID:      id,
		UserName:    fmt.Sprintf("user%d", id),
		FirstName:   "User",
		LastName:    fmt.Sprintf("%d", id),
		DateOfBirth: "1990-01-01",
		Email:       fmt.Sprintf("user%d@example.com", id),
	}
}
