package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"linkstash/internal/db"
	"linkstash/internal/email"
	"linkstash/internal/handlers"
	"linkstash/internal/middleware"
	"linkstash/internal/models"
)

// RegisterRoutes registers all application routes.
func RegisterRoutes(ctx context.Context, s *Server, database *db.DB, enricher handlers.Enricher, notifier *email.Notifier) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Sessions, database)

	// Initialize handlers
	linkHandler := handlers.NewLinkHandler(database, s.Cfg, enricher)
	shareHandler := handlers.NewShareHandler(database, s.Cfg, notifier)
	userHandler := handlers.NewUserHandler(database)
	prefHandler := handlers.NewPreferenceHandler(database)
	healthHandler := handlers.NewHealthHandler(database)

	// OIDC is required; every store operation is keyed to an
	// authenticated email.
	if s.Cfg.OIDCIssuer == "" {
		log.Fatal("OIDC_ISSUER is required. All users must be authenticated.")
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
	if err != nil {
		return err
	}

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)

	s.App.Get("/login", func(c fiber.Ctx) error {
		return c.Render("login", fiber.Map{
			"SiteTitle": s.Cfg.SiteTitle,
		})
	})

	s.App.Get("/", authMiddleware.OptionalAuth, func(c fiber.Ctx) error {
		user, _ := c.Locals("user").(*models.User)
		if user == nil {
			return c.Redirect().To("/login")
		}
		return c.Render("index", fiber.Map{
			"SiteTitle": s.Cfg.SiteTitle,
			"User":      user,
		})
	})

	s.App.Get("/health", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API - everything requires an authenticated principal
	api := s.App.Group("/api", authMiddleware.RequireAuth)

	api.Get("/me", userHandler.Me)
	api.Put("/me/content-default", prefHandler.Set)

	api.Get("/links", linkHandler.List)
	api.Post("/links", linkHandler.Create)
	api.Put("/links/:id", linkHandler.Update)
	api.Delete("/links/:id", linkHandler.Delete)

	api.Post("/shares", shareHandler.Create)
	api.Post("/shares/follow", shareHandler.Follow)
	api.Get("/shares/outgoing", shareHandler.Outgoing)
	api.Get("/shares/incoming", shareHandler.Incoming)
	api.Get("/shares/:id/links", shareHandler.PublicLinks)
	api.Delete("/shares/:id", shareHandler.Delete)

	// /users/search must be registered before the :email parameter route
	api.Get("/users/search", userHandler.Search)
	api.Get("/users/:email/content-default", prefHandler.Get)
	api.Get("/users/:email", userHandler.GetByEmail)

	return nil
}
