package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/handler"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every endpoint handler
type Handlers struct {
	Health      *handler.HealthHandler
	Product     *handler.ProductHandler
	Transaction *handler.TransactionHandler
	Statistics  *handler.StatisticsHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", h.Health.Info)
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")

	products := api.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/code/:code", h.Product.GetByCode)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
	api.GET("/product-search", h.Product.Search)

	// POST /api/purchase
	api.POST("/purchase", h.Transaction.Purchase)

	transactions := api.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.DELETE("/:id", h.Transaction.Delete)
	}

	statistics := api.Group("/statistics")
	{
		statistics.GET("/sales", h.Statistics.Sales)
		statistics.GET("/top-products", h.Statistics.TopProducts)
		statistics.GET("/hourly-sales", h.Statistics.HourlySales)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string, requestTimeout time.Duration) {
	// RequestID first so every later log line carries the id
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Timeout(requestTimeout))
}
