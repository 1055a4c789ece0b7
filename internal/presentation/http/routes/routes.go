package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salesight/salesight-api/internal/config"
	"github.com/salesight/salesight-api/internal/presentation/http/handler"
	"github.com/salesight/salesight-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Analytics *handler.AnalyticsHandler
	Product   *handler.ProductHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// Paths match the deployments this API replaces, trailing slashes included.
	analytics := router.Group("/analytics")
	{
		analytics.GET("/", h.Analytics.ListSales)
		analytics.POST("/total_sales", h.Analytics.TotalSales)
		analytics.POST("/trending_products", h.Analytics.TrendingProducts)
		analytics.POST("/category_sales", h.Analytics.CategorySales)
	}

	products := router.Group("/products")
	{
		products.POST("/", h.Product.ProductsWithSales)
	}

	return router
}
