package repositories

import (
	"errors"

	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user directory operations.
// Counter columns are never written through this interface; only the follow
// service mutates them, inside its own transaction.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
	SearchUsers(query string) ([]models.User, error)
	GetFollowCounts(id uint) (models.FollowCounts, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL.
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user record.
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID.
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user record.
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteUser deletes a user by ID.
func (r *PostgresUserRepository) DeleteUser(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// SearchUsers searches for users by display name or username (case-insensitive).
func (r *PostgresUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("LOWER(display_name) LIKE LOWER(?) OR LOWER(username) LIKE LOWER(?)",
		"%"+query+"%", "%"+query+"%").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetFollowCounts reads the denormalized counters off the user row. A missing
// user reads as zero counts rather than an error; display code treats an
// unknown user as having no relationships.
func (r *PostgresUserRepository) GetFollowCounts(id uint) (models.FollowCounts, error) {
	var user models.User
	if err := r.db.Select("followers", "following").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FollowCounts{}, nil
		}
		return models.FollowCounts{}, err
	}
	return models.FollowCounts{Followers: user.Followers, Following: user.Following}, nil
}
