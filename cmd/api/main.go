package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront/docs"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/database/migration"
	"storefront/internal/database/seed"
	"storefront/internal/events"
	handlers "storefront/internal/http/handler"
	"storefront/internal/http/middleware"
	"storefront/internal/logging"
	appotel "storefront/internal/otel"
	"storefront/internal/pkg/clock"
	"storefront/internal/repository/postgres"
	"storefront/internal/service"
	"storefront/internal/storage"
)

// @title Storefront API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	logger := logging.New(cfg.LogLevel, loc)
	slog.SetDefault(logger)

	if err := run(cfg, loc, logger); err != nil {
		logger.Error("server_exit", "error_message", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, loc *time.Location, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := appotel.Init(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		return err
	}
	if cfg.SeedDemo {
		if err := seed.Run(ctx, db, logger); err != nil {
			return err
		}
	}

	// Avatars and product images live in S3-compatible storage (MinIO-supported)
	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		return err
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.AMQP.URL != "" {
		rp, err := events.Dial(cfg.AMQP)
		if err != nil {
			return err
		}
		publisher = rp
	} else {
		logger.Warn("event_publishing_disabled", "reason", "AMQP_URL not set")
	}
	defer publisher.Close()

	// Repositories and services
	users := postgres.NewUserPostgres(db)
	subs := postgres.NewSubscriptionPostgres(db)
	products := postgres.NewProductPostgres(db)
	reviews := postgres.NewReviewPostgres(db)
	carts := postgres.NewCartPostgres(db)

	svc := handlers.Services{
		Profile:      service.NewProfileService(users, objStore, cfg.MinIO.PresignExpiry, logger),
		Subscription: service.NewSubscriptionService(users, subs, publisher, clock.NewRealClock(), loc, logger),
		Product:      service.NewProductService(products, objStore, cfg.MinIO.PresignExpiry, logger),
		Review:       service.NewReviewService(products, reviews),
		Cart:         service.NewCartService(products, carts),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(metrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, svc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_start", "addr", ":"+cfg.Port, "app_host", cfg.AppHost)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server_shutdown", "status", "starting")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return err
	}
	logger.Info("server_shutdown", "status", "success")
	return nil
}
