package models

import "time"

// Follow is one directed edge in the follow graph. The pair
// (follower_id, followee_id) is unique; A following B and B following A are
// two distinct rows. Display names are snapshots taken at edge creation and
// are deliberately not kept in sync with later renames.
type Follow struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	FollowerID   uint      `json:"follower_id" gorm:"not null;index:idx_follows_follower;uniqueIndex:idx_follows_pair"`
	FolloweeID   uint      `json:"followee_id" gorm:"not null;index:idx_follows_followee;uniqueIndex:idx_follows_pair"`
	FollowerName string    `json:"follower_name" gorm:"size:100"`
	FolloweeName string    `json:"followee_name" gorm:"size:100"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the table name for Follow.
func (Follow) TableName() string { return "follows" }

// FollowResult tags the outcome of a follow or unfollow call so callers can
// tell a fresh mutation apart from a harmless repeat.
type FollowResult string

const (
	FollowCreated      FollowResult = "created"
	FollowAlreadyThere FollowResult = "already_following"
	FollowRemoved      FollowResult = "removed"
	FollowNotThere     FollowResult = "not_following"
)

// FollowRequest carries the acting user for follow/unfollow endpoints; the
// target comes from the URL.
type FollowRequest struct {
	ActorID uint `json:"actor_id" validate:"required,gt=0"`
}
