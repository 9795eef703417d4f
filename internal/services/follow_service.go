package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"github.com/tareqmahmud/connecthub/backend/internal/repositories"
	"gorm.io/gorm"
)

var (
	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
	// ErrUserNotFound is returned when either side of an edge does not
	// resolve to an existing user.
	ErrUserNotFound = errors.New("user not found")
)

// FollowService is the only component allowed to write to the follows table
// or to the followers/following counters on users. Every write runs inside a
// single transaction so an edge and its two counter updates commit or roll
// back together; the counters always equal the edge counts.
type FollowService struct {
	db *gorm.DB
}

// NewFollowService creates a new FollowService.
func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow creates the directed edge follower -> followee and bumps both
// counters in one transaction. Following someone you already follow is a
// no-op, not an error.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint) (models.FollowResult, error) {
	if followerID == followeeID {
		return "", ErrSelfFollow
	}

	var result models.FollowResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		follows := repositories.NewPostgresFollowRepository(tx)

		exists, err := follows.Exists(followerID, followeeID)
		if err != nil {
			return err
		}
		if exists {
			result = models.FollowAlreadyThere
			return nil
		}

		var follower, followee models.User
		if err := tx.First(&follower, followerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := tx.First(&followee, followeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		edge := &models.Follow{
			ID:           uuid.NewString(),
			FollowerID:   followerID,
			FolloweeID:   followeeID,
			FollowerName: follower.DisplayName,
			FolloweeName: followee.DisplayName,
			CreatedAt:    time.Now(),
		}
		inserted, err := follows.Insert(edge)
		if err != nil {
			return fmt.Errorf("insert follow edge: %w", err)
		}
		if inserted == 0 {
			// Lost the race against a concurrent follow of the same pair;
			// the other transaction owns the counter bump.
			result = models.FollowAlreadyThere
			return nil
		}

		if err := tx.Model(&models.User{}).Where("id = ?", followerID).
			UpdateColumn("following", gorm.Expr("following + 1")).Error; err != nil {
			return fmt.Errorf("increment following: %w", err)
		}
		if err := tx.Model(&models.User{}).Where("id = ?", followeeID).
			UpdateColumn("followers", gorm.Expr("followers + 1")).Error; err != nil {
			return fmt.Errorf("increment followers: %w", err)
		}

		result = models.FollowCreated
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// Unfollow removes the edge and decrements both counters in one transaction.
// Unfollowing someone you never followed is a no-op. Decrements are guarded
// so a counter already at zero stays at zero.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint) (models.FollowResult, error) {
	var result models.FollowResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		follows := repositories.NewPostgresFollowRepository(tx)

		removed, err := follows.Remove(followerID, followeeID)
		if err != nil {
			return fmt.Errorf("delete follow edge: %w", err)
		}
		if removed == 0 {
			result = models.FollowNotThere
			return nil
		}

		if err := tx.Model(&models.User{}).Where("id = ? AND following > 0", followerID).
			UpdateColumn("following", gorm.Expr("following - 1")).Error; err != nil {
			return fmt.Errorf("decrement following: %w", err)
		}
		if err := tx.Model(&models.User{}).Where("id = ? AND followers > 0", followeeID).
			UpdateColumn("followers", gorm.Expr("followers - 1")).Error; err != nil {
			return fmt.Errorf("decrement followers: %w", err)
		}

		result = models.FollowRemoved
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// IsFollowing reports whether the directed edge exists.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return repositories.NewPostgresFollowRepository(s.db.WithContext(ctx)).
		Exists(followerID, followeeID)
}

// ListFollowers returns summaries of everyone following userID, most recent
// first.
func (s *FollowService) ListFollowers(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return repositories.NewPostgresFollowRepository(s.db.WithContext(ctx)).
		ListFollowers(userID)
}

// ListFollowing returns summaries of everyone userID follows, most recent
// first.
func (s *FollowService) ListFollowing(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return repositories.NewPostgresFollowRepository(s.db.WithContext(ctx)).
		ListFollowing(userID)
}

// GetCounts reads the denormalized counters. An unknown user reads as zero
// counts, not an error.
func (s *FollowService) GetCounts(ctx context.Context, userID uint) (models.FollowCounts, error) {
	return repositories.NewPostgresUserRepository(s.db.WithContext(ctx)).
		GetFollowCounts(userID)
}
