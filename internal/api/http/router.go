package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/barbershop-service/internal/api/http/handlers"
	"github.com/spec-kit/barbershop-service/internal/auth"
	"github.com/spec-kit/barbershop-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Clients        *handlers.ClientsHandler
	Subscriptions  *handlers.SubscriptionsHandler
	Addresses      *handlers.AddressesHandler
	Barbers        *handlers.BarbersHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/verify-token/:token", cfg.Auth.VerifyToken)
	authGroup.Post("/register", cfg.AuthMiddleware.Handle, cfg.Auth.Register)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	clients := app.Group("/clients", cfg.AuthMiddleware.Handle)
	clients.Post("/", cfg.Clients.Create)
	clients.Get("/cpf/:cpf", cfg.Clients.GetByCPF)
	clients.Get("/:id", cfg.Clients.Get)
	clients.Patch("/:id", cfg.Clients.Update)
	clients.Delete("/:id", cfg.Clients.Delete)

	subscriptions := app.Group("/subscriptions", cfg.AuthMiddleware.Handle)
	subscriptions.Post("/", cfg.Subscriptions.Create)
	subscriptions.Get("/client/:clientID", cfg.Subscriptions.ListByClient)
	subscriptions.Get("/:id", cfg.Subscriptions.Get)
	subscriptions.Patch("/:id", cfg.Subscriptions.Update)
	subscriptions.Delete("/:id", cfg.Subscriptions.Delete)

	addresses := app.Group("/addresses", cfg.AuthMiddleware.Handle)
	addresses.Post("/", cfg.Addresses.Create)
	addresses.Get("/", cfg.Addresses.List)
	addresses.Get("/client/:clientID", cfg.Addresses.ListByClient)
	addresses.Get("/:id", cfg.Addresses.Get)
	addresses.Patch("/:id", cfg.Addresses.Update)
	addresses.Delete("/:id", cfg.Addresses.Delete)

	barbers := app.Group("/barbers", cfg.AuthMiddleware.Handle)
	barbers.Post("/", cfg.Barbers.Create)
	barbers.Get("/", cfg.Barbers.List)
	barbers.Get("/:id", cfg.Barbers.Get)
	barbers.Patch("/:id", cfg.Barbers.Update)
	barbers.Delete("/:id", cfg.Barbers.Delete)
}
