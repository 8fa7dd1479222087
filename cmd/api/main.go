package main

import (
	"context"
	stdlog "log"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"shipdocs/internal/config"
	"shipdocs/internal/database"
	"shipdocs/internal/database/migration"
	"shipdocs/internal/docnumber"
	handlers "shipdocs/internal/http/handler"
	"shipdocs/internal/http/middleware"
	"shipdocs/internal/logger"
	"shipdocs/internal/otel"
	"shipdocs/internal/repository/mysql"
	"shipdocs/internal/service"
	"shipdocs/internal/storage"
	"shipdocs/internal/view"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.Log)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer log.Sync()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(ctx)

	db, err := database.NewMySQL(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureSchema(ctx, db, cfg.Database.Name, log); err != nil {
		log.Fatal("failed to ensure database schema", zap.Error(err))
	}

	var store storage.Storage
	switch strings.ToLower(cfg.Storage.Backend) {
	case "minio":
		store, err = storage.NewMinIO(cfg.Storage.MinIO)
	default:
		store, err = storage.NewLocal(cfg.Storage.ContentDir)
	}
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}

	docRepo := mysql.NewDocumentMySQL(db)
	docSvc := service.NewDocumentService(docRepo, store, docnumber.New(), cfg.Storage.PlaceholderURL)

	registry := prometheus.NewRegistry()
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		Views:        view.New("web/templates"),
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, db, docSvc, registry)

	addr := ":" + cfg.Port
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
