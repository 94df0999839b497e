package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/metrics"
)

// SetupRouter creates and configures the Gin router. m may be nil, which leaves /metrics unmounted.
func SetupRouter(cfg *config.Config, handler *Handler, log *zap.Logger, m *metrics.Metrics) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()

	router.Use(logger.Recovery(log))
	router.Use(logger.GinMiddleware(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := router.Group("/")
	api.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		products := api.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.POST("/standardize", handler.StandardizeProducts)
		}

		customers := api.Group("/customers")
		{
			customers.POST("", handler.CreateCustomer)
			customers.POST("/check-email", handler.CheckEmail)
			customers.GET("", handler.ListCustomers)
			customers.GET("/:id", handler.GetCustomer)
			customers.PATCH("/:id", handler.UpdateCustomer)
			customers.DELETE("/:id", handler.DeleteCustomer)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", handler.CreateOrder)
			orders.GET("", handler.ListOrders)
		}
	}

	return router
}
