package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shoplens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	api := router.Group("/api")
	{
		api.POST("/recommend", handler.Recommend)
		api.GET("/products", handler.ListProducts)
		api.GET("/products/:id", handler.GetProduct)
		api.GET("/search", handler.Search)
		api.GET("/categories", handler.ListCategories)
		api.GET("/brands", handler.ListBrands)
		api.GET("/health", handler.HealthCheck)
	}

	return router
}
