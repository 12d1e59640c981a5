package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/IbrahimAwiby/youtube-clone/internal/handler"
	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Feed   *handler.FeedHandler
	Watch  *handler.WatchHandler
	Auth   *handler.AuthHandler
	Theme  *handler.ThemeHandler
	Health *handler.HealthHandler

	// Sessions backs the auth gates.
	Sessions          middleware.SessionReader
	SessionCookieName string
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Probes and metrics sit outside the API group
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	browseLimit := middleware.NewBrowseRateLimiter().Handler()
	authLimit := middleware.NewAuthRateLimiter().Handler()

	requireSession := middleware.RequireSession(h.Sessions, h.SessionCookieName)
	requireAnonymous := middleware.RequireAnonymous(h.Sessions, h.SessionCookieName)

	api := app.Group("/api")

	// Browse routes: signed-in users only
	api.Get("/feed", h.Feed.Browse, browseLimit, requireSession)
	api.Get("/video/:categoryId/:videoId", h.Watch.Get, browseLimit, requireSession)
	api.Get("/video/:categoryId/:videoId/related", h.Watch.Related, browseLimit, requireSession)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", h.Auth.SignUp, authLimit, requireAnonymous)
	auth.Post("/signin", h.Auth.SignIn, authLimit, requireAnonymous)
	auth.Post("/signout", h.Auth.SignOut, authLimit)
	auth.Get("/session", h.Auth.Session, requireSession)

	// Theme stays open: the sign-in page is themed too
	api.Get("/theme", h.Theme.Get)
	api.Put("/theme", h.Theme.Put)
}
