package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finextract/internal/api"
	"finextract/internal/api/handlers"
	"finextract/internal/repository"
	"finextract/internal/service"
	"finextract/pkg/config"
	"finextract/pkg/logger"
	"finextract/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting finextract service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	docRepo := repository.NewDocumentRepository(db, appLogger)
	ratingRepo := repository.NewRatingRepository(db, appLogger)

	validator, err := service.NewValidator(appLogger)
	if err != nil {
		appLogger.Fatal("Failed to build document validator", zap.Error(err))
	}

	rasterizer := service.NewRasterizer(appLogger)
	llmService := service.NewLLMService(&cfg.OpenRouter, appLogger)
	cache := service.NewExtractionCache()
	docService := service.NewDocumentService(rasterizer, llmService, validator, cache, docRepo, appLogger)

	docHandler := handlers.NewDocumentHandler(docService, validator, appLogger)
	ratingHandler := handlers.NewRatingHandler(ratingRepo, appLogger)

	app := api.SetupRouter(docHandler, ratingHandler, cfg.Upload.MaxSize)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
