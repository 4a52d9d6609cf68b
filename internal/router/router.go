package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/SunbrightCreators/Backend/internal/handler"
	"github.com/SunbrightCreators/Backend/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Discovery *handler.DiscoveryHandler
	Toggle    *handler.ToggleHandler
	Campaign  *handler.CampaignHandler
	Maps      *handler.MapsHandler
	Stats     *handler.StatsHandler
	Health    *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (no viewer identity needed)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	discoveryLimit := middleware.NewDiscoveryRateLimiter()
	toggleLimit := middleware.NewToggleRateLimiter()
	mapsLimit := middleware.NewMapsRateLimiter()

	// API routes — everything under /api carries a viewer identity
	api := app.Group("/api", middleware.RequireViewer())

	// Discovery
	api.Get("/discovery/:role/:zoom", h.Discovery.GetMap, discoveryLimit.Handler())

	// Toggles
	api.Post("/toggle/:kind/like", h.Toggle.Like, toggleLimit.Handler())
	api.Post("/toggle/:kind/scrap", h.Toggle.Scrap, toggleLimit.Handler())
	api.Get("/toggle/:kind/scrap", h.Toggle.ListScraps)

	// Campaigns
	api.Get("/campaigns/founder/my-created", h.Campaign.GetMyCreated)
	api.Get("/campaigns/:campaignId/:role", h.Campaign.GetDetail)

	// Maps
	api.Get("/maps/geocoding", h.Maps.Geocode, mapsLimit.Handler())
	api.Get("/maps/reverse-geocoding/legal", h.Maps.ReverseLegal, mapsLimit.Handler())
	api.Get("/maps/reverse-geocoding/full", h.Maps.ReverseFull, mapsLimit.Handler())

	// Stats
	api.Get("/stats", h.Stats.GetStats)
}
