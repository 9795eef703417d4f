package repositories

import (
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the edge-store operations on the follows table.
// Write methods are only ever called by the follow service, which constructs
// a repository over its transaction handle; handlers use the read methods
// through the service.
type FollowRepository interface {
	Insert(edge *models.Follow) (int64, error)
	Remove(followerID, followeeID uint) (int64, error)
	Exists(followerID, followeeID uint) (bool, error)
	ListFollowers(userID uint) ([]models.UserSummary, error)
	ListFollowing(userID uint) ([]models.UserSummary, error)
	FollowingIDs(userID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL.
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository. The db
// handle may be a transaction.
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// Insert writes a new edge. The composite unique index on
// (follower_id, followee_id) plus ON CONFLICT DO NOTHING makes a duplicate
// insert report zero affected rows instead of failing, so a concurrent
// follow of the same pair degrades to a no-op.
func (r *PostgresFollowRepository) Insert(edge *models.Follow) (int64, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followee_id"}},
		DoNothing: true,
	}).Create(edge)
	return res.RowsAffected, res.Error
}

// Remove deletes the edge for the given pair and reports how many rows went
// away. Zero means the pair was not related.
func (r *PostgresFollowRepository) Remove(followerID, followeeID uint) (int64, error) {
	res := r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	return res.RowsAffected, res.Error
}

// Exists checks whether the directed edge is present.
func (r *PostgresFollowRepository) Exists(followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowers returns summaries of everyone following userID, most recent
// follower first.
func (r *PostgresFollowRepository) ListFollowers(userID uint) ([]models.UserSummary, error) {
	var summaries []models.UserSummary
	err := r.db.Model(&models.User{}).
		Select("users.id, users.display_name, users.username, users.role, users.profile_image_url").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.created_at DESC").
		Scan(&summaries).Error
	return summaries, err
}

// ListFollowing returns summaries of everyone userID follows, most recently
// followed first.
func (r *PostgresFollowRepository) ListFollowing(userID uint) ([]models.UserSummary, error) {
	var summaries []models.UserSummary
	err := r.db.Model(&models.User{}).
		Select("users.id, users.display_name, users.username, users.role, users.profile_image_url").
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Scan(&summaries).Error
	return summaries, err
}

// FollowingIDs returns the ids of everyone userID follows. The feed handler
// uses this to scope the Mongo post query.
func (r *PostgresFollowRepository) FollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	return ids, err
}
