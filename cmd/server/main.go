package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikkim/shop-api/config"
	"github.com/ikkim/shop-api/internal/app/controller"
	"github.com/ikkim/shop-api/internal/app/repository"
	"github.com/ikkim/shop-api/internal/app/service"
	"github.com/ikkim/shop-api/internal/router"
	"github.com/ikkim/shop-api/internal/scheduler"
	"github.com/ikkim/shop-api/internal/storage"
	ws "github.com/ikkim/shop-api/internal/websocket"
	"github.com/ikkim/shop-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Starting Shop API Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   cfg.Log.Level,
	})

	// Event hub
	hub := ws.NewHub()
	go hub.Run()

	// Initialize repositories
	itemRepo := repository.NewItemRepository()
	cartRepo := repository.NewCartRepository()

	// Initialize services
	shopService := service.NewShopService(itemRepo, cartRepo, hub)
	mathService := service.NewMathService()

	// Initialize controllers
	itemController := controller.NewItemController(shopService)
	cartController := controller.NewCartController(shopService)
	mathController := controller.NewMathController(mathService)
	reportController := controller.NewReportController(shopService)
	eventsController := controller.NewEventsController(hub)

	// Report scheduler
	var reportStorage storage.ReportStorage
	if cfg.S3.Enabled() {
		reportStorage = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.Prefix,
		)
		logger.Info("Reports will be uploaded to S3", map[string]interface{}{
			"bucket": cfg.S3.Bucket,
		})
	} else {
		reportStorage = storage.NewLocalStorage(cfg.Report.Dir)
	}
	reportScheduler := scheduler.NewReportScheduler(cfg.Report.Cron, shopService, reportStorage)
	if err := reportScheduler.Start(); err != nil {
		logger.Fatal("Failed to start report scheduler", err)
	}

	// Setup router
	r := router.NewRouter(
		itemController,
		cartController,
		mathController,
		reportController,
		eventsController,
		cfg,
	)
	engine := r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...", map[string]interface{}{
		"timeout": cfg.Server.ShutdownTimeout.String(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	reportScheduler.Stop()
	hub.Stop()

	logger.Info("Server stopped successfully")
}
