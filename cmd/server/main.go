package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/tareqmahmud/connecthub/backend/internal/router"
	"github.com/tareqmahmud/connecthub/backend/pkg/config"
	"github.com/tareqmahmud/connecthub/backend/pkg/logger"
	"github.com/tareqmahmud/connecthub/backend/validators"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	// Initialize database connections
	db, err := config.InitDB(zl)
	if err != nil {
		zl.Fatal("failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e, zl)

	if err := router.SetupRoutes(e, db.Postgres, db.Mongo, zl); err != nil {
		zl.Fatal("failed to set up routes", zap.Error(err))
	}

	zl.Info("starting server", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
