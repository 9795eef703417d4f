package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"github.com/tareqmahmud/connecthub/backend/internal/repositories"
	"gorm.io/gorm"
)

// ArticleHandler handles HTTP requests related to articles.
type ArticleHandler struct {
	articleRepository repositories.ArticleRepository
	userRepository    repositories.UserRepository
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleRepo repositories.ArticleRepository, userRepo repositories.UserRepository) *ArticleHandler {
	return &ArticleHandler{
		articleRepository: articleRepo,
		userRepository:    userRepo,
	}
}

// RegisterArticleRoutes registers article-related routes.
func (h *ArticleHandler) RegisterArticleRoutes(g *echo.Group) {
	g.POST("/articles", h.CreateArticle)
	g.GET("/articles", h.GetArticles)
	g.GET("/articles/:id", h.GetArticle)
	g.PUT("/articles/:id", h.UpdateArticle)
	g.DELETE("/articles/:id", h.DeleteArticle)
	g.GET("/users/:id/articles", h.GetUserArticles)
}

// CreateArticle publishes a new article.
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	var req models.CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByID(req.AuthorID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Author not found")
	}

	article := &models.Article{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Body:     req.Body,
		Tags:     req.Tags,
	}

	if err := h.articleRepository.CreateArticle(article); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not create article")
	}

	return c.JSON(http.StatusCreated, article)
}

// GetArticles lists articles, newest first, paginated.
func (h *ArticleHandler) GetArticles(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	articles, total, err := h.articleRepository.GetArticles(page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not list articles")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"articles": articles},
		"meta":    echo.Map{"currentPage": page, "totalItems": total, "itemsPerPage": limit},
	})
}

// GetArticle retrieves a single article by ID.
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	article, err := h.articleRepository.GetArticleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Article not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load article")
	}
	return c.JSON(http.StatusOK, article)
}

// UpdateArticle edits an existing article.
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articleRepository.GetArticleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Article not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load article")
	}

	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Body != "" {
		article.Body = req.Body
	}
	if req.Tags != "" {
		article.Tags = req.Tags
	}

	if err := h.articleRepository.UpdateArticle(article); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not update article")
	}

	return c.JSON(http.StatusOK, article)
}

// DeleteArticle removes an article.
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.articleRepository.GetArticleByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Article not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load article")
	}

	if err := h.articleRepository.DeleteArticle(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not delete article")
	}

	return c.NoContent(http.StatusNoContent)
}

// GetUserArticles lists all articles by one author.
func (h *ArticleHandler) GetUserArticles(c echo.Context) error {
	authorID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	articles, err := h.articleRepository.GetArticlesByAuthorID(authorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not list articles")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"articles": articles}})
}
