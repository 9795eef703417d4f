package repositories

import (
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"gorm.io/gorm"
)

// ResourceRepository defines the interface for resource data operations.
type ResourceRepository interface {
	CreateResource(resource *models.Resource) error
	GetResourceByID(id uint) (*models.Resource, error)
	GetResourcesByOwnerID(ownerID uint) ([]models.Resource, error)
	GetResourcesByCategory(category string) ([]models.Resource, error)
	DeleteResource(id uint) error
}

// PostgresResourceRepository implements ResourceRepository for PostgreSQL.
type PostgresResourceRepository struct {
	db *gorm.DB
}

// NewPostgresResourceRepository creates a new PostgresResourceRepository.
func NewPostgresResourceRepository(db *gorm.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

func (r *PostgresResourceRepository) CreateResource(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

func (r *PostgresResourceRepository) GetResourceByID(id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *PostgresResourceRepository) GetResourcesByOwnerID(ownerID uint) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

func (r *PostgresResourceRepository) GetResourcesByCategory(category string) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Where("category = ?", category).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

func (r *PostgresResourceRepository) DeleteResource(id uint) error {
	return r.db.Delete(&models.Resource{}, id).Error
}
