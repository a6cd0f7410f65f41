package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TKMhub/simpro-app/internal/config"
	"github.com/TKMhub/simpro-app/internal/handler"
	"github.com/TKMhub/simpro-app/internal/images"
	"github.com/TKMhub/simpro-app/internal/infrastructure/database"
	"github.com/TKMhub/simpro-app/internal/logger"
	"github.com/TKMhub/simpro-app/internal/metrics"
	"github.com/TKMhub/simpro-app/internal/middleware"
	"github.com/TKMhub/simpro-app/internal/notion"
	"github.com/TKMhub/simpro-app/internal/repository"
	"github.com/TKMhub/simpro-app/internal/service"
	"github.com/TKMhub/simpro-app/internal/storage"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	if cfg.MigrationsPath != "" {
		if err := database.MigrateUp(poolCfg, cfg.MigrationsPath); err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("path", cfg.MigrationsPath),
				slog.String("error", err.Error()))
		}
	}

	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Object storage is optional: without it image resolution degrades
	// to the default image for storage-backed paths.
	var objectStorage images.ObjectStorage
	if cfg.StorageConfigured() {
		s3Storage, err := storage.NewS3Storage(context.Background(), storage.Config{
			Region:        cfg.StorageRegion,
			Endpoint:      cfg.StorageEndpoint,
			PublicBaseURL: cfg.StoragePublicBaseURL,
		})
		if err != nil {
			logger.Fatal("Failed to create storage client",
				slog.String("error", err.Error()))
		}
		objectStorage = s3Storage
	} else {
		logger.Warn("Object storage not configured, storage-backed images fall back to the default image")
	}

	// Document service client and the resolve/fetch pipeline
	notionOpts := []notion.Option{}
	if cfg.NotionBaseURL != "" {
		notionOpts = append(notionOpts, notion.WithBaseURL(cfg.NotionBaseURL))
	}
	notionClient := notion.NewClient(cfg.NotionToken, notionOpts...)
	blogResolver := notion.NewResolver(notionClient, cfg.NotionBlogRootPageID)
	productResolver := notion.NewResolver(notionClient, cfg.NotionProductRootPageID)
	fetcher := notion.NewFetcher(notionClient)

	// Image resolvers, one per storage bucket
	blogImages := images.NewResolver(objectStorage, cfg.StorageBlogBucket, cfg.AssetRoot)
	productImages := images.NewResolver(objectStorage, cfg.StorageProductBucket, cfg.AssetRoot)

	// Initialize repositories
	blogRepo := repository.NewPostgresBlogRepository(pool)
	productRepo := repository.NewPostgresProductRepository(pool)

	// Initialize services
	contentService := service.NewContentService(
		blogRepo,
		productRepo,
		blogResolver,
		productResolver,
		fetcher,
		blogImages,
		productImages,
	)

	// Initialize handlers
	blogHandler := handler.NewBlogHandler(contentService)
	productHandler := handler.NewProductHandler(contentService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		blog := v1.Group("/blog")
		{
			blog.GET("", blogHandler.List)
			blog.GET("/facets", blogHandler.Facets)
			blog.GET("/:slug", blogHandler.Detail)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:slug", productHandler.Detail)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
