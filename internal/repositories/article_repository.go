package repositories

import (
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"gorm.io/gorm"
)

// ArticleRepository defines the interface for article data operations.
type ArticleRepository interface {
	CreateArticle(article *models.Article) error
	GetArticleByID(id uint) (*models.Article, error)
	GetArticlesByAuthorID(authorID uint) ([]models.Article, error)
	GetArticles(page, limit int) ([]models.Article, int64, error)
	UpdateArticle(article *models.Article) error
	DeleteArticle(id uint) error
}

// PostgresArticleRepository implements ArticleRepository for PostgreSQL.
type PostgresArticleRepository struct {
	db *gorm.DB
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(db *gorm.DB) *PostgresArticleRepository {
	return &PostgresArticleRepository{db: db}
}

func (r *PostgresArticleRepository) CreateArticle(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *PostgresArticleRepository) GetArticleByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *PostgresArticleRepository) GetArticlesByAuthorID(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (r *PostgresArticleRepository) GetArticles(page, limit int) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	r.db.Model(&models.Article{}).Count(&total)

	offset := (page - 1) * limit
	err := r.db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	return articles, total, err
}

func (r *PostgresArticleRepository) UpdateArticle(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *PostgresArticleRepository) DeleteArticle(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}
