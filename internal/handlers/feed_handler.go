package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"github.com/tareqmahmud/connecthub/backend/internal/repositories"
)

// FeedHandler assembles the home feed: posts authored by the people the
// viewer follows, enriched with author summaries.
type FeedHandler struct {
	postRepository   repositories.PostRepository
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, followRepo repositories.FollowRepository) *FeedHandler {
	return &FeedHandler{
		postRepository:   postRepo,
		userRepository:   userRepo,
		followRepository: followRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes.
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/users/:id/feed", h.GetFeed)
}

// EnrichedPost is a post with its author's summary attached.
type EnrichedPost struct {
	models.Post
	Author models.UserSummary `json:"author"`
}

// GetFeed returns the viewer's feed, newest post first, paginated.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	viewerID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	skip := int64((page - 1) * limit)

	followingIDs, err := h.followRepository.FollowingIDs(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load feed")
	}

	posts, err := h.postRepository.GetPostsByAuthorIDs(c.Request().Context(), followingIDs, skip, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load feed")
	}

	// One summary lookup per distinct author on the page.
	authorMap := make(map[uint]models.UserSummary)
	for _, p := range posts {
		if _, ok := authorMap[p.AuthorID]; ok {
			continue
		}
		if author, err := h.userRepository.GetUserByID(p.AuthorID); err == nil {
			authorMap[p.AuthorID] = author.ToSummary()
		}
	}

	enriched := make([]EnrichedPost, len(posts))
	for i, p := range posts {
		enriched[i] = EnrichedPost{Post: p, Author: authorMap[p.AuthorID]}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": enriched},
		"meta":    echo.Map{"currentPage": page, "itemsPerPage": limit},
	})
}
