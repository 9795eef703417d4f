package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"github.com/tareqmahmud/connecthub/backend/internal/repositories"
)

// PostHandler handles HTTP requests related to feed posts.
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterPostRoutes registers post-related routes.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.GET("/users/:id/posts", h.GetUserPosts)
}

// CreatePost creates a new feed post.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByID(req.AuthorID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Author not found")
	}

	post := &models.Post{
		AuthorID:  req.AuthorID,
		Content:   req.Content,
		ImageURLs: req.ImageURLs,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not create post")
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a single post by ID.
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost removes a post.
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postRepository.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUserPosts lists posts authored by one user, newest first.
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	authorID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	posts, err := h.postRepository.GetPostsByAuthorID(c.Request().Context(), authorID, 0, 50)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not list posts")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": posts}})
}
