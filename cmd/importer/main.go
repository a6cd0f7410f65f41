package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/TKMhub/simpro-app/internal/config"
	"github.com/TKMhub/simpro-app/internal/importer"
	"github.com/TKMhub/simpro-app/internal/infrastructure/database"
	"github.com/TKMhub/simpro-app/internal/logger"
	"github.com/TKMhub/simpro-app/internal/repository"
	"github.com/TKMhub/simpro-app/internal/validator"
)

func main() {
	var (
		file     = flag.String("file", "", "path to the CSV file to import")
		resource = flag.String("resource", "blog", "resource to import: blog or product")
		dryRun   = flag.Bool("dry-run", false, "validate and report without writing rows")
	)
	flag.Parse()

	if *file == "" {
		logger.Fatal("missing required -file flag")
	}

	if *resource != importer.ResourceBlog && *resource != importer.ResourceProduct {
		logger.Fatal("invalid -resource flag, expected blog or product",
			slog.String("resource", *resource))
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	ctx := context.Background()

	pool, err := database.NewPostgres(ctx, database.PoolConfig{
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
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatal("Failed to open input file",
			slog.String("file", *file),
			slog.String("error", err.Error()))
	}
	defer f.Close()

	blogRepo := repository.NewPostgresBlogRepository(pool)
	productRepo := repository.NewPostgresProductRepository(pool)
	v := validator.NewValidator()

	imp := importer.New(blogRepo, productRepo, v, *dryRun)

	summary, err := imp.Run(ctx, *resource, f)
	if err != nil {
		logger.Fatal("Import failed",
			slog.String("error", err.Error()))
	}

	logger.Info("Import complete",
		slog.String("resource", *resource),
		slog.Bool("dry_run", *dryRun),
		slog.Int("read", summary.Read),
		slog.Int("inserted", summary.Inserted),
		slog.Int("skipped_invalid", summary.SkippedInvalid),
		slog.Int("skipped_duplicate", summary.SkippedDuplicate))
}
