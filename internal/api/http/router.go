package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/translate-service/internal/api/http/handlers"
	"github.com/spec-kit/translate-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Translations      *handlers.TranslationsHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Auth.Register)
	app.Post("/login", cfg.Auth.Login)

	app.Post("/en_to_fr", cfg.Translations.EnToFr)
	app.Post("/fr_to_en", cfg.Translations.FrToEn)

	protected := app.Group("", cfg.SessionMiddleware.Handle)
	protected.Get("/me", cfg.Auth.Me)
	protected.Get("/translations", cfg.Translations.Recent)
}
