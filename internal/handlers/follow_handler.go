package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"github.com/tareqmahmud/connecthub/backend/internal/repositories"
	"github.com/tareqmahmud/connecthub/backend/internal/services"
	"go.uber.org/zap"
)

// FollowHandler translates follow-graph HTTP requests into calls on the
// follow service. Business no-ops come back as neutral 200 responses;
// storage failures surface as a generic 500 without driver detail.
type FollowHandler struct {
	followService          *services.FollowService
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	logger                 *zap.Logger
}

// NewFollowHandler creates a new FollowHandler.
func NewFollowHandler(followService *services.FollowService, userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository, logger *zap.Logger) *FollowHandler {
	return &FollowHandler{
		followService:          followService,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
		logger:                 logger,
	}
}

// RegisterFollowRoutes registers follow-related routes.
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
	g.GET("/users/:id/follow-counts", h.GetFollowCounts)
	g.GET("/users/:id/follow-status", h.GetFollowStatus)
}

func parseIDParam(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}
	return uint(id), nil
}

// FollowUser makes the actor follow the user in the path.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.followService.Follow(c.Request().Context(), req.ActorID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFollow):
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
		case errors.Is(err, services.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		default:
			h.logger.Error("follow failed",
				zap.Uint("actor_id", req.ActorID),
				zap.Uint("target_id", targetID),
				zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Could not follow user")
		}
	}

	if result == models.FollowCreated && h.notificationRepository != nil {
		// Best effort; the follow itself already committed.
		if actor, err := h.userRepository.GetUserByID(req.ActorID); err == nil {
			notif := &models.Notification{
				Type:        "follow",
				ActorID:     req.ActorID,
				RecipientID: targetID,
				Message:     actor.DisplayName + " started following you",
			}
			if err := h.notificationRepository.CreateNotification(notif); err != nil {
				h.logger.Warn("follow notification not created", zap.Error(err))
			}
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"status": result}})
}

// UnfollowUser makes the actor unfollow the user in the path.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.followService.Unfollow(c.Request().Context(), req.ActorID, targetID)
	if err != nil {
		h.logger.Error("unfollow failed",
			zap.Uint("actor_id", req.ActorID),
			zap.Uint("target_id", targetID),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not unfollow user")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"status": result}})
}

// GetFollowers lists everyone following the user, most recent first.
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	followers, err := h.followService.ListFollowers(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not list followers")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"followers": followers}})
}

// GetFollowing lists everyone the user follows, most recent first.
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	following, err := h.followService.ListFollowing(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not list following")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": following}})
}

// GetFollowCounts returns the two denormalized counters for a user. Unknown
// users read as zero counts.
func (h *FollowHandler) GetFollowCounts(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	counts, err := h.followService.GetCounts(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not get follow counts")
	}

	return c.JSON(http.StatusOK, counts)
}

// GetFollowStatus reports whether follower_id follows the user in the path.
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	followerID, err := strconv.ParseUint(c.QueryParam("follower_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter 'follower_id' is required")
	}

	following, err := h.followService.IsFollowing(c.Request().Context(), uint(followerID), targetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not check follow status")
	}

	return c.JSON(http.StatusOK, echo.Map{"following": following})
}
