package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/stylematch/backend/config"
	httpDelivery "github.com/stylematch/backend/internal/delivery/http"
	"github.com/stylematch/backend/internal/domain"
	"github.com/stylematch/backend/internal/infrastructure/cache"
	"github.com/stylematch/backend/internal/infrastructure/catalog"
	"github.com/stylematch/backend/internal/infrastructure/vision"
	"github.com/stylematch/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting StyleMatch Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	analysisCache := cache.NewMemoryCache()
	log.Printf("Analysis cache TTL: %s", cfg.Cache.TTL)

	catalogStore := catalog.NewMemoryStore()
	if cfg.Catalog.SeedFile != "" {
		count, err := catalogStore.LoadFile(context.Background(), cfg.Catalog.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load catalog seed file: %v", err)
		}
		log.Printf("Catalog loaded: %d candidates from %s", count, cfg.Catalog.SeedFile)
	} else {
		log.Printf("WARNING: No catalog seed file configured - catalog starts empty")
	}

	visionClient := vision.NewClient(cfg.Vision.APIKey, cfg.Vision.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		visionClient.SetDebug(true)
		log.Printf("Vision client debug mode enabled")
	}

	if cfg.Vision.APIKey != "" {
		log.Printf("Vision API configured: %s", cfg.Vision.BaseURL)
	} else {
		log.Printf("WARNING: Vision API key not configured - analysis calls will fail!")
	}

	// Initialize usecase layer
	styleService := usecase.NewStyleService(
		analysisCache,
		visionClient,
		catalogStore,
		usecase.StyleServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			Matching: usecase.MatchConfig{
				Weights: domain.ScoreWeights{
					Style:    cfg.Matching.StyleWeight,
					Color:    cfg.Matching.ColorWeight,
					Price:    cfg.Matching.PriceWeight,
					Occasion: cfg.Matching.OccasionWeight,
				},
				HighConfidenceThreshold: cfg.Matching.HighConfidenceThreshold,
				ParallelThreshold:       cfg.Matching.ParallelThreshold,
				EnableDebugLogging:      cfg.Matching.EnableDebugLogging,
			},
		},
	)

	log.Printf("Matching: weights style=%.2f color=%.2f price=%.2f occasion=%.2f, high-confidence=%.2f",
		cfg.Matching.StyleWeight,
		cfg.Matching.ColorWeight,
		cfg.Matching.PriceWeight,
		cfg.Matching.OccasionWeight,
		cfg.Matching.HighConfidenceThreshold)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(styleService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
