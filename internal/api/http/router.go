package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/contact-service/internal/api/http/handlers"
	"github.com/spec-kit/contact-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Contacts *handlers.ContactsHandler
	AuthGate *auth.AuthGate
	// RequireAuthForContacts puts the contacts resource behind the auth gate.
	RequireAuthForContacts bool
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Index)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Get("/profile", cfg.AuthGate.Handle, cfg.Auth.Profile)

	var contacts fiber.Router
	if cfg.RequireAuthForContacts {
		contacts = api.Group("/contacts", cfg.AuthGate.Handle)
	} else {
		contacts = api.Group("/contacts")
	}
	contacts.Get("/", cfg.Contacts.List)
	contacts.Post("/", cfg.Contacts.Create)
	contacts.Get("/:id", cfg.Contacts.Get)
	contacts.Put("/:id", cfg.Contacts.Update)
	contacts.Delete("/:id", cfg.Contacts.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
}
