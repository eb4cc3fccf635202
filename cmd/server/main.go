package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/shoplens/backend/config"
	httpDelivery "github.com/shoplens/backend/internal/delivery/http"
	"github.com/shoplens/backend/internal/infrastructure/catalog"
	"github.com/shoplens/backend/internal/infrastructure/openai"
	"github.com/shoplens/backend/internal/usecase"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Environment == "development" {
		log.SetLevel(log.DebugLevel)
	}

	log.Infof("Starting ShopLens Backend v1.0.0")
	log.Infof("Environment: %s", cfg.Server.Environment)
	log.Infof("Port: %s", cfg.Server.Port)
	log.Infof("Model: %s", cfg.OpenAI.Model)

	// Catalog is loaded once and immutable afterwards
	store, err := catalog.Load(cfg.Catalog.Path, catalog.LoadOptions{
		DefaultBrand: cfg.Catalog.DefaultBrand,
	})
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	aiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		aiClient.SetDebug(true)
		log.Infof("Reasoning client debug mode enabled")
	}

	// Initialize usecase layer
	recommender := usecase.NewRecommendationService(store, aiClient)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(store, recommender)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}
