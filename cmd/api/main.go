package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/barbershop-service/internal/api/http"
	"github.com/spec-kit/barbershop-service/internal/api/http/handlers"
	"github.com/spec-kit/barbershop-service/internal/auth"
	"github.com/spec-kit/barbershop-service/internal/config"
	"github.com/spec-kit/barbershop-service/internal/events"
	"github.com/spec-kit/barbershop-service/internal/observability"
	"github.com/spec-kit/barbershop-service/internal/persistence"
	"github.com/spec-kit/barbershop-service/internal/repository"
	"github.com/spec-kit/barbershop-service/internal/repository/memory"
	"github.com/spec-kit/barbershop-service/internal/service"
	"github.com/spec-kit/barbershop-service/internal/worker"
)

type repositories struct {
	users         repository.UserRepository
	clients       repository.ClientRepository
	subscriptions repository.SubscriptionRepository
	addresses     repository.AddressRepository
	barbers       repository.BarberRepository
}

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

	metrics := observability.NewMetrics()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	repos := newRepositories(pg, logger)

	tokens, err := auth.NewTokenManager(auth.TokenConfig{
		Secret:    []byte(cfg.Auth.JWTSecret),
		TTL:       cfg.Auth.AccessTokenTTL(),
		Algorithm: cfg.Auth.JWTAlgorithm,
	})
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	var guard service.LoginGuard
	if redis.Configured() {
		guard = persistence.NewLoginLimiter(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginLockout())
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:   repos.users,
		Tokens:     tokens,
		Hasher:     auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		Guard:      guard,
		Dispatcher: dispatcher,
		Logger:     logger,
		Metrics:    metrics,
	})
	if _, err := authService.EnsureBootstrapUser(ctx, cfg.Auth.BootstrapLogin, cfg.Auth.BootstrapPassword, cfg.Auth.BootstrapPosition); err != nil {
		logger.Fatal("failed to create bootstrap user", zap.Error(err))
	}

	clientService := service.NewClientService(repos.clients, dispatcher, logger)
	subscriptionService := service.NewSubscriptionService(repos.subscriptions, repos.clients, dispatcher, logger)
	addressService := service.NewAddressService(repos.addresses, dispatcher, logger)
	barberService := service.NewBarberService(repos.barbers, dispatcher, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger, metrics),
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:       logger,
		Metrics:      metrics,
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	validator := handlers.NewValidator()
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Dependency{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:           handlers.NewAuthHandler(authService, validator),
		Clients:        handlers.NewClientsHandler(clientService, validator),
		Subscriptions:  handlers.NewSubscriptionsHandler(subscriptionService, validator),
		Addresses:      handlers.NewAddressesHandler(addressService, validator),
		Barbers:        handlers.NewBarbersHandler(barberService, validator),
		AuthMiddleware: auth.NewAuthMiddleware(authService),
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// newRepositories picks the Postgres repositories when a pool exists and
// the in-memory ones otherwise.
func newRepositories(pg *persistence.Postgres, logger *zap.Logger) repositories {
	if !pg.Configured() {
		logger.Warn("running with in-memory storage; data is lost on restart")
		store := memory.NewStore()
		return repositories{
			users:         store.Users(),
			clients:       store.Clients(),
			subscriptions: store.Subscriptions(),
			addresses:     store.Addresses(),
			barbers:       store.Barbers(),
		}
	}
	pool := pg.PoolHandle()
	return repositories{
		users:         repository.NewUserRepository(pool),
		clients:       repository.NewClientRepository(pool),
		subscriptions: repository.NewSubscriptionRepository(pool),
		addresses:     repository.NewAddressRepository(pool),
		barbers:       repository.NewBarberRepository(pool),
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
