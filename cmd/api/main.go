package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/rasoighar/backend/config"
	"github.com/rasoighar/backend/internal/api"
	"github.com/rasoighar/backend/internal/database"
	"github.com/rasoighar/backend/internal/logger"
	"github.com/rasoighar/backend/internal/router"
	"github.com/rasoighar/backend/internal/server"
	"github.com/rasoighar/backend/internal/service"
)

func main() {
	logger.Init()
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Redis is optional; external recipe responses are simply not cached
	// when it is unavailable.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, external recipe caching disabled", zap.Error(err))
		redisClient = nil
	}

	// S3 is optional as well; image uploads return 503 without it.
	var imageService *service.ImageService
	if s3Config, err := config.NewS3Config(context.Background(), cfg); err != nil {
		logger.Warn("s3 unavailable, recipe image uploads disabled", zap.Error(err))
	} else {
		imageService = service.NewImageService(s3Config)
	}

	inventoryService := service.NewInventoryService(db)
	recipeService := service.NewRecipeService(db)
	iotService := service.NewIoTService(db, cfg.JWTSecret)
	externalService := service.NewExternalRecipeService(cfg.ExternalRecipeAPIURL, cfg.ExternalRecipeAPIKey, redisClient)

	engine := router.Setup(
		api.NewInventoryHandler(inventoryService),
		api.NewRecipeHandler(recipeService, imageService),
		api.NewIoTHandler(iotService),
		api.NewExternalHandler(externalService),
	)

	srv := server.New(engine)
	if err := srv.Start(cfg.ServerPort); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
