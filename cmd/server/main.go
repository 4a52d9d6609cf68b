package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/SunbrightCreators/Backend/internal/config"
	"github.com/SunbrightCreators/Backend/internal/db"
	"github.com/SunbrightCreators/Backend/internal/handler"
	"github.com/SunbrightCreators/Backend/internal/metrics"
	"github.com/SunbrightCreators/Backend/internal/middleware"
	"github.com/SunbrightCreators/Backend/internal/repository"
	"github.com/SunbrightCreators/Backend/internal/router"
	"github.com/SunbrightCreators/Backend/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "sunbright-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	metrics.Init(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	// Repositories
	campaignRepo := repository.NewCampaignRepo(pool)
	proposalRepo := repository.NewProposalRepo(pool)
	toggleRepo := repository.NewToggleRepo(pool)
	viewerRepo := repository.NewViewerRepo(pool)

	// Services
	geocodeSvc := service.NewGeocodeService(cfg.GeocoderBaseURL, cfg.GeocoderAPIKey, cfg.GeocoderTimeout, cache)
	discoverySvc := service.NewDiscoveryService(campaignRepo, viewerRepo, geocodeSvc, cfg.GeocoderConcurrency)
	toggleSvc := service.NewToggleService(toggleRepo, campaignRepo, proposalRepo)
	campaignSvc := service.NewCampaignService(campaignRepo)
	statsSvc := service.NewStatsService(campaignRepo, proposalRepo)

	app := fiber.New(fiber.Config{
		AppName:      "Sunbright API",
		ServerHeader: "Sunbright",
	})

	router.Setup(app, &router.Handlers{
		Discovery: handler.NewDiscoveryHandler(discoverySvc),
		Toggle:    handler.NewToggleHandler(toggleSvc),
		Campaign:  handler.NewCampaignHandler(campaignSvc),
		Maps:      handler.NewMapsHandler(geocodeSvc),
		Stats:     handler.NewStatsHandler(statsSvc),
		Health:    handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Printf("Sunbright backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
