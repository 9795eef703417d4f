package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/tareqmahmud/connecthub/backend/internal/handlers"
	"github.com/tareqmahmud/connecthub/backend/internal/middleware"
	"github.com/tareqmahmud/connecthub/backend/internal/models"
	"github.com/tareqmahmud/connecthub/backend/internal/repositories"
	"github.com/tareqmahmud/connecthub/backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware.
func SetupMiddleware(e *echo.Echo, logger *zap.Logger) {
	e.Use(middleware.RequestLogger(logger))
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, logger *zap.Logger) error {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Article{},
		&models.Resource{},
		&models.Notification{},
	); err != nil {
		return err
	}
	logger.Info("postgres migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories and services ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	articleRepo := repositories.NewPostgresArticleRepository(pgdb)
	resourceRepo := repositories.NewPostgresResourceRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database("connecthub"))

	followService := services.NewFollowService(pgdb)

	api := e.Group("/api/v1")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)

	// Follow graph routes
	followHandler := handlers.NewFollowHandler(followService, userRepo, notificationRepo, logger)
	followHandler.RegisterFollowRoutes(api)

	// Article routes
	articleHandler := handlers.NewArticleHandler(articleRepo, userRepo)
	articleHandler.RegisterArticleRoutes(api)

	// Resource routes
	resourceHandler := handlers.NewResourceHandler(resourceRepo, userRepo)
	resourceHandler.RegisterResourceRoutes(api)

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo)
	postHandler.RegisterPostRoutes(api)

	// Feed routes
	feedHandler := handlers.NewFeedHandler(postRepo, userRepo, followRepo)
	feedHandler.RegisterFeedRoutes(api)

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	logger.Info("all routes configured")
	return nil
}
