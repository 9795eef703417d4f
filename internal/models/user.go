package models

import "time"

// User is the identity record owned by the user directory. The follow
// service only ever touches the Followers and Following columns; everything
// else belongs to the profile handlers.
type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	DisplayName     string    `json:"display_name" gorm:"size:100;not null"`
	Username        string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email           string    `json:"email" gorm:"size:255;uniqueIndex"`
	Bio             string    `json:"bio" gorm:"size:500"`
	Role            string    `json:"role" gorm:"size:30;default:member"`
	ProfileImageURL string    `json:"profile_image_url"`
	Followers       int       `json:"followers" gorm:"not null;default:0"`
	Following       int       `json:"following" gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserSummary is the reduced view returned by follower/following listings.
type UserSummary struct {
	ID              uint   `json:"id"`
	DisplayName     string `json:"display_name"`
	Username        string `json:"username"`
	Role            string `json:"role"`
	ProfileImageURL string `json:"profile_image_url"`
}

// ToSummary converts a full user record to its listing view.
func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		DisplayName:     u.DisplayName,
		Username:        u.Username,
		Role:            u.Role,
		ProfileImageURL: u.ProfileImageURL,
	}
}

// FollowCounts holds the two denormalized counters read off the user row.
type FollowCounts struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}

// CreateUserRequest defines the signup payload.
type CreateUserRequest struct {
	DisplayName     string `json:"display_name" validate:"required,min=2,max=100"`
	Username        string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email           string `json:"email" validate:"required,email"`
	Bio             string `json:"bio" validate:"omitempty,max=500"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,url"`
}

// UpdateUserRequest defines the profile update payload.
type UpdateUserRequest struct {
	DisplayName     string `json:"display_name,omitempty" validate:"omitempty,min=2,max=100"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	Bio             string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfileImageURL string `json:"profile_image_url,omitempty" validate:"omitempty,url"`
}
