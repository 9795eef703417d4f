package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"github.com/tareqmahmud/connecthub/backend/internal/repositories"
	"gorm.io/gorm"
)

// ResourceHandler handles HTTP requests related to shared resources.
type ResourceHandler struct {
	resourceRepository repositories.ResourceRepository
	userRepository     repositories.UserRepository
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(resourceRepo repositories.ResourceRepository, userRepo repositories.UserRepository) *ResourceHandler {
	return &ResourceHandler{
		resourceRepository: resourceRepo,
		userRepository:     userRepo,
	}
}

// RegisterResourceRoutes registers resource-related routes.
func (h *ResourceHandler) RegisterResourceRoutes(g *echo.Group) {
	g.POST("/resources", h.CreateResource)
	g.GET("/resources", h.GetResources)
	g.GET("/resources/:id", h.GetResource)
	g.DELETE("/resources/:id", h.DeleteResource)
	g.GET("/users/:id/resources", h.GetUserResources)
}

// CreateResource shares a new resource.
func (h *ResourceHandler) CreateResource(c echo.Context) error {
	var req models.CreateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByID(req.OwnerID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Owner not found")
	}

	resource := &models.Resource{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		URL:         req.URL,
		Category:    req.Category,
		Description: req.Description,
	}

	if err := h.resourceRepository.CreateResource(resource); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not create resource")
	}

	return c.JSON(http.StatusCreated, resource)
}

// GetResources lists resources, optionally filtered by category.
func (h *ResourceHandler) GetResources(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter 'category' is required")
	}

	resources, err := h.resourceRepository.GetResourcesByCategory(category)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not list resources")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"resources": resources}})
}

// GetResource retrieves a single resource by ID.
func (h *ResourceHandler) GetResource(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resource, err := h.resourceRepository.GetResourceByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Resource not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load resource")
	}
	return c.JSON(http.StatusOK, resource)
}

// DeleteResource removes a resource.
func (h *ResourceHandler) DeleteResource(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.resourceRepository.GetResourceByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Resource not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load resource")
	}

	if err := h.resourceRepository.DeleteResource(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not delete resource")
	}

	return c.NoContent(http.StatusNoContent)
}

// GetUserResources lists all resources shared by one user.
func (h *ResourceHandler) GetUserResources(c echo.Context) error {
	ownerID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resources, err := h.resourceRepository.GetResourcesByOwnerID(ownerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not list resources")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"resources": resources}})
}
