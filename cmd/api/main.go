package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/salesight/salesight-api/internal/application/service"
	"github.com/salesight/salesight-api/internal/config"
	"github.com/salesight/salesight-api/internal/infrastructure/database"
	"github.com/salesight/salesight-api/internal/infrastructure/repository"
	"github.com/salesight/salesight-api/internal/presentation/http/handler"
	"github.com/salesight/salesight-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed demo data outside production
	if cfg.App.Env != "production" {
		if err := database.SeedDemoData(db); err != nil {
			log.Printf("Warning: Failed to seed demo data: %v", err)
		}
	}

	// Initialize repositories
	saleRepo := repository.NewSaleRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	analyticsService := service.NewAnalyticsService(saleRepo, productRepo)
	productService := service.NewProductService(productRepo, saleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Product:   handler.NewProductHandler(productService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
