package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/contact-service/internal/api/http"
	"github.com/spec-kit/contact-service/internal/api/http/handlers"
	"github.com/spec-kit/contact-service/internal/auth"
	"github.com/spec-kit/contact-service/internal/cache"
	"github.com/spec-kit/contact-service/internal/config"
	"github.com/spec-kit/contact-service/internal/events"
	"github.com/spec-kit/contact-service/internal/observability"
	"github.com/spec-kit/contact-service/internal/persistence"
	"github.com/spec-kit/contact-service/internal/repository"
	"github.com/spec-kit/contact-service/internal/service"
	"github.com/spec-kit/contact-service/internal/validation"
	"github.com/spec-kit/contact-service/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, cfg.Postgres.DSN, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	accountRepo := repository.NewAccountRepository(pg.Pool)
	contactRepo := repository.NewContactRepository(pg.Pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	authService := service.NewAuthService(cfg.Auth, accountRepo)
	contactService := service.NewContactService(service.ContactDependencies{
		Contacts:   contactRepo,
		Cache:      cache.NewRedisContactCache(redis.Cmdable(), cfg.Redis.ContactCacheTTL()),
		Validator:  validation.NewContactValidator(),
		Dispatcher: dispatcher,
		Logger:     logger.Named("contacts"),
	})

	deps := map[string]handlers.Pinger{"postgres": pg}
	if redis.Client != nil {
		deps["redis"] = redis
	}
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.CORS.AllowOrigins,
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:                 handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics, deps),
		Auth:                   handlers.NewAuthHandler(authService),
		Contacts:               handlers.NewContactsHandler(contactService),
		AuthGate:               auth.NewAuthGate(authService.TokenManager()),
		RequireAuthForContacts: cfg.Contacts.RequireAuth,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
